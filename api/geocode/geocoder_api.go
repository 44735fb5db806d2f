package geocode

// GeocoderAPI resolves a street address to coordinates for the geo index.
type GeocoderAPI interface {
	Geocode(address string) (lat, lng float64, err error)
}
