package kandagp

import (
	"fmt"

	"kanda-curry/models"
	"kanda-curry/util"
)

// KandaGpApiClientMock serves fixture data instead of scraping the site.
type KandaGpApiClientMock struct {
	indexPath   string
	detailsPath string
}

// NewKandaGpApiClientMock creates a mock backed by the given fixture files.
func NewKandaGpApiClientMock(indexPath, detailsPath string) *KandaGpApiClientMock {
	return &KandaGpApiClientMock{
		indexPath:   indexPath,
		detailsPath: detailsPath,
	}
}

func (c *KandaGpApiClientMock) GetRestaurantIndex() ([]models.RestaurantIndexEntry, error) {
	index, err := util.ReadRestaurantIndexFromJSON(c.indexPath)
	if err != nil {
		return nil, fmt.Errorf("could not read restaurant index fixture: %w", err)
	}
	return index, nil
}

func (c *KandaGpApiClientMock) GetRestaurantDetail(pageURL string) (*models.RawRestaurantDetail, error) {
	details, err := util.ReadRestaurantDetailsFromJSON(c.detailsPath)
	if err != nil {
		return nil, fmt.Errorf("could not read restaurant details fixture: %w", err)
	}
	detail, ok := details[pageURL]
	if !ok {
		return nil, fmt.Errorf("no fixture detail for %s", pageURL)
	}
	return &detail, nil
}
