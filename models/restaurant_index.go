package models

// RestaurantIndexEntry is one card scraped from the stamp-rally index page.
type RestaurantIndexEntry struct {
	Name         string `json:"name"`
	Course       string `json:"course"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"tn_url"`
}
