package kandagp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"kanda-curry/api"
	"kanda-curry/config"
	"kanda-curry/models"
)

// KandaGpApiClient scrapes the live stamp-rally site through the shared
// HTTPClient.
type KandaGpApiClient struct {
	*api.HTTPClient
}

// NewKandaGpApiClient creates a new instance of KandaGpApiClient.
func NewKandaGpApiClient(httpClient *api.HTTPClient) *KandaGpApiClient {
	return &KandaGpApiClient{
		HTTPClient: httpClient,
	}
}

// indexCardRe matches one restaurant card on the index page: course letter,
// detail link, thumbnail, and a second link wrapping the shop name.
var indexCardRe = regexp.MustCompile(`(?s)<div class="card (\w)course">\s*<figure>\s*<a href="([^"]+)">\s*<img src="([^"]+)"\s*/?>.*?<p class="cardtxt">\s*<a href="([^"]+)">(.*?)</a>`)

// shop table rows, one regexp per field
var (
	shopNameRe    = tableRowRe("店名")
	shopAddressRe = tableRowRe("住所")
	shopHoursRe   = tableRowRe("営業時間")
	shopHolidayRe = tableRowRe("定休日")
	shopCodeRe    = tableRowRe("カレーグランプリ店舗コード")
)

func tableRowRe(header string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)<tr>\s*<th>` + regexp.QuoteMeta(header) + `</th>\s*<td>(.*?)</td>\s*</tr>`)
}

// GetRestaurantIndex fetches the stamp-rally page and extracts every
// restaurant card, skipping in-page anchor links.
func (c *KandaGpApiClient) GetRestaurantIndex() ([]models.RestaurantIndexEntry, error) {
	page, err := c.RequestRaw("GET", config.KANDA_GP_STAMP_RALLY_PATH, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stamp-rally index: %w", err)
	}

	var index []models.RestaurantIndexEntry
	for _, m := range indexCardRe.FindAllStringSubmatch(page, -1) {
		if strings.HasPrefix(m[4], "#") {
			continue
		}
		index = append(index, models.RestaurantIndexEntry{
			Name:         strings.TrimSpace(m[5]),
			Course:       m[1],
			URL:          m[4],
			ThumbnailURL: m[3],
		})
	}

	if len(index) == 0 {
		return nil, fmt.Errorf("no restaurant cards found on index page")
	}
	return index, nil
}

// GetRestaurantDetail fetches a restaurant page and extracts its shop table.
func (c *KandaGpApiClient) GetRestaurantDetail(pageURL string) (*models.RawRestaurantDetail, error) {
	endpoint := strings.TrimPrefix(pageURL, c.BaseURL)
	page, err := c.RequestRaw("GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch restaurant page %s: %w", pageURL, err)
	}

	name := tableField(shopNameRe, page)
	address := tableField(shopAddressRe, page)
	hours := tableField(shopHoursRe, page)
	holiday := tableField(shopHolidayRe, page)
	codeText := tableField(shopCodeRe, page)

	if name == "" || codeText == "" {
		return nil, fmt.Errorf("shop table not found in %s", pageURL)
	}

	code, err := strconv.Atoi(strings.TrimSpace(codeText))
	if err != nil {
		return nil, fmt.Errorf("invalid shop code %q in %s: %w", codeText, pageURL, err)
	}

	return &models.RawRestaurantDetail{
		Code:           code,
		Name:           name,
		Address:        address,
		BusinessHours:  hours,
		RegularHoliday: holiday,
	}, nil
}

func tableField(re *regexp.Regexp, page string) string {
	m := re.FindStringSubmatch(page)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
