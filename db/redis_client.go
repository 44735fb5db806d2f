package db

// RedisClient defines the storage operations the DAO layer relies on.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Keys(pattern string) ([]string, error)
	Del(key string) error
	// AddGeoJSON indexes memberKey at (lat, lng) under geoKey and stores the
	// JSON-serialized data under memberKey.
	AddGeoJSON(geoKey, memberKey string, lat, lng float64, data interface{}) error
	// GeoRadiusJSON returns the stored JSON payloads of all members within
	// radiusKM kilometers of (lat, lng).
	GeoRadiusJSON(geoKey string, lat, lng, radiusKM float64) ([]string, error)
	Ping() error
}
