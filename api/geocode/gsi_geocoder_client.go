package geocode

import (
	"fmt"
	"net/url"

	"kanda-curry/api"
)

// gsiFeature is one candidate from the GSI address search API. Coordinates
// come back as [lng, lat].
type gsiFeature struct {
	Geometry struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties struct {
		Title string `json:"title"`
	} `json:"properties"`
}

// GsiGeocoderClient resolves addresses through the GSI address search API.
type GsiGeocoderClient struct {
	*api.HTTPClient
}

// NewGsiGeocoderClient creates a new instance of GsiGeocoderClient.
func NewGsiGeocoderClient(httpClient *api.HTTPClient) *GsiGeocoderClient {
	return &GsiGeocoderClient{
		HTTPClient: httpClient,
	}
}

// Geocode returns the coordinates of the first candidate for the address.
func (c *GsiGeocoderClient) Geocode(address string) (float64, float64, error) {
	var features []gsiFeature
	endpoint := "/address-search/AddressSearch?q=" + url.QueryEscape(address)
	if err := c.Request("GET", endpoint, nil, nil, &features); err != nil {
		return 0, 0, fmt.Errorf("geocode request failed for %q: %w", address, err)
	}
	if len(features) == 0 || len(features[0].Geometry.Coordinates) < 2 {
		return 0, 0, fmt.Errorf("no geocode candidate for %q", address)
	}
	coords := features[0].Geometry.Coordinates
	return coords[1], coords[0], nil
}
