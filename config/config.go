package config

import (
	"os"
	"path/filepath"
	"time"
)

// Redis config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Schedule refresher config
const SCHEDULE_REFRESHER_INTERVAL_MINUTES = 60 * 24

// Kanda Curry Grand Prix site
const KANDA_GP_BASE_URL = "https://kanda-curry.com"
const KANDA_GP_STAMP_RALLY_PATH = "/?page_id=12180"
const KANDA_GP_CRAWL_DELAY_MILLIS = 1000

// GSI address search API (geocoding)
const GEOCODER_BASE_URL = "https://msearch.gsi.go.jp"

// Availability config
const JST_OFFSET_HOURS = 9
const CLOSING_SOON_THRESHOLD_MINUTES = 30

// Default query center (Kanda station) for map rendering
const KANDA_LAT = 35.69165
const KANDA_LNG = 139.770641

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const RESTAURANT_INDEX_RESOURCE = "restaurant_index.json"
const RESTAURANT_DETAILS_RESOURCE = "restaurant_details.json"
const RESTAURANTS_RESOURCE = "restaurants.json"
const RESTAURANT_MAP_OUTPUT = "restaurant_map.html"

// RedisAddress returns the Redis address, honoring the REDIS_ADDR override.
func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS
}

// JST returns the fixed-offset location all query instants are expressed in.
func JST() *time.Location {
	return time.FixedZone("JST", JST_OFFSET_HOURS*3600)
}

// BaseDir returns the absolute path of the project root directory.
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}
	return wd
}

// ResourcesDir returns the directory fixture files are read from.
func ResourcesDir() string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX)
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(ResourcesDir(), resourceFile)
}
