package kandagp

import "kanda-curry/models"

// KandaGpAPI defines the interface for scraping the Kanda Curry Grand Prix
// stamp-rally site.
type KandaGpAPI interface {
	// GetRestaurantIndex extracts the restaurant cards from the stamp-rally
	// index page.
	GetRestaurantIndex() ([]models.RestaurantIndexEntry, error)
	// GetRestaurantDetail extracts the shop table from a restaurant page.
	GetRestaurantDetail(pageURL string) (*models.RawRestaurantDetail, error)
}
