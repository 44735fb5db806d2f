package redis

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"kanda-curry/db"
	"kanda-curry/models"
)

const RESTAURANTS_GEO_KEY_V1 = "restaurants_geo_v1"
const RESTAURANTS_GEO_PLACE_MEMBER_FORMAT_V1 = "restaurants_geo_place_v1:%d"

// RedisRestaurantDAO handles restaurant records in Redis: JSON payloads
// geo-indexed by the restaurant's coordinates.
type RedisRestaurantDAO struct {
	client db.RedisClient
}

// NewRedisRestaurantDAO initializes the DAO with a Redis client.
func NewRedisRestaurantDAO(client db.RedisClient) *RedisRestaurantDAO {
	return &RedisRestaurantDAO{client: client}
}

// UpsertRestaurant stores the restaurant as a geolocation with its JSON data.
func (dao *RedisRestaurantDAO) UpsertRestaurant(r models.Restaurant) error {
	memberKey := fmt.Sprintf(RESTAURANTS_GEO_PLACE_MEMBER_FORMAT_V1, r.Code)
	return dao.client.AddGeoJSON(RESTAURANTS_GEO_KEY_V1, memberKey, r.Lat, r.Lng, r)
}

// GetNearbyRestaurants retrieves restaurants within radiusKM of (lat, lng).
func (dao *RedisRestaurantDAO) GetNearbyRestaurants(lat, lng, radiusKM float64) ([]models.Restaurant, error) {
	payloads, err := dao.client.GeoRadiusJSON(RESTAURANTS_GEO_KEY_V1, lat, lng, radiusKM)
	if err != nil {
		return nil, fmt.Errorf("[RedisRestaurantDAO] failed to get restaurants: %w", err)
	}

	restaurants := make([]models.Restaurant, len(payloads))
	for i, payload := range payloads {
		if err := json.Unmarshal([]byte(payload), &restaurants[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal restaurant JSON: %w", err)
		}
	}
	return restaurants, nil
}

// GetRestaurant retrieves one restaurant by its grand-prix shop code.
func (dao *RedisRestaurantDAO) GetRestaurant(code int) (*models.Restaurant, error) {
	key := fmt.Sprintf(RESTAURANTS_GEO_PLACE_MEMBER_FORMAT_V1, code)
	payload, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant %d: %w", code, err)
	}
	var r models.Restaurant
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal restaurant JSON: %w", err)
	}
	return &r, nil
}

// ListAllRestaurantCodes returns the shop codes present in the store.
func (dao *RedisRestaurantDAO) ListAllRestaurantCodes() ([]int, error) {
	pattern := strings.ReplaceAll(RESTAURANTS_GEO_PLACE_MEMBER_FORMAT_V1, "%d", "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurant keys: %w", err)
	}

	prefix := strings.ReplaceAll(RESTAURANTS_GEO_PLACE_MEMBER_FORMAT_V1, "%d", "")
	codes := make([]int, 0, len(keys))
	for _, k := range keys {
		code, err := strconv.Atoi(strings.TrimPrefix(k, prefix))
		if err != nil {
			continue
		}
		codes = append(codes, code)
	}
	return codes, nil
}
