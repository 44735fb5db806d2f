package util

import (
	"encoding/json"
	"fmt"
	"os"

	"kanda-curry/models"
)

// ReadRestaurantIndexFromJSON loads stamp-rally index entries from disk.
func ReadRestaurantIndexFromJSON(filePath string) ([]models.RestaurantIndexEntry, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var index []models.RestaurantIndexEntry
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to unmarshal restaurant index: %w", err)
	}
	return index, nil
}

// ReadRestaurantDetailsFromJSON loads raw shop-table details keyed by page
// URL from disk.
func ReadRestaurantDetailsFromJSON(filePath string) (map[string]models.RawRestaurantDetail, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	details := make(map[string]models.RawRestaurantDetail)
	if err := json.Unmarshal(data, &details); err != nil {
		return nil, fmt.Errorf("failed to unmarshal restaurant details: %w", err)
	}
	return details, nil
}

// ReadRestaurantsFromJSON loads fully parsed restaurant records from disk.
func ReadRestaurantsFromJSON(filePath string) ([]models.Restaurant, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var restaurants []models.Restaurant
	if err := json.Unmarshal(data, &restaurants); err != nil {
		return nil, fmt.Errorf("failed to unmarshal restaurants: %w", err)
	}
	return restaurants, nil
}
