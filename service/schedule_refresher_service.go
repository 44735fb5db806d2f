package services

import (
	"log"
	"time"

	"kanda-curry/api/geocode"
	"kanda-curry/api/kandagp"
	"kanda-curry/dao/redis"
	"kanda-curry/models"
	"kanda-curry/schedule"
)

// ScheduleRefresherService periodically re-scrapes the stamp-rally site,
// parses each restaurant's schedule, and upserts the records into Redis.
// A restaurant whose text fails to parse is skipped whole: no partial
// window list is ever stored.
type ScheduleRefresherService struct {
	restaurantDao *redis.RedisRestaurantDAO
	kandaGpAPI    kandagp.KandaGpAPI
	geocoderAPI   geocode.GeocoderAPI
	crawlDelay    time.Duration
}

// NewScheduleRefresherService constructs a refresher with its dependencies.
func NewScheduleRefresherService(
	restaurantDao *redis.RedisRestaurantDAO,
	kandaGpAPI kandagp.KandaGpAPI,
	geocoderAPI geocode.GeocoderAPI,
	crawlDelay time.Duration,
) *ScheduleRefresherService {
	return &ScheduleRefresherService{
		restaurantDao: restaurantDao,
		kandaGpAPI:    kandaGpAPI,
		geocoderAPI:   geocoderAPI,
		crawlDelay:    crawlDelay,
	}
}

// StartPeriodicJob launches the background refresh loop at the given interval.
func (sr *ScheduleRefresherService) StartPeriodicJob(interval time.Duration) {
	go sr.startPeriodicJob(interval)
}

func (sr *ScheduleRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[ScheduleRefresherService] Running periodic schedule refresh.")
		if err := sr.RefreshSchedules(); err != nil {
			log.Printf("[ScheduleRefresherService] RefreshSchedules returned error: %v", err)
		} else {
			log.Println("[ScheduleRefresherService] RefreshSchedules completed successfully.")
		}
	}
}

// RefreshSchedules fetches the index, scrapes every restaurant page, parses
// the schedule text, and upserts the resulting records.
func (sr *ScheduleRefresherService) RefreshSchedules() error {
	index, err := sr.kandaGpAPI.GetRestaurantIndex()
	if err != nil {
		return err
	}
	log.Printf("[ScheduleRefresherService] Refreshing %d restaurants", len(index))

	upserted := 0
	for i, entry := range index {
		if i > 0 && sr.crawlDelay > 0 {
			time.Sleep(sr.crawlDelay)
		}

		detail, err := sr.kandaGpAPI.GetRestaurantDetail(entry.URL)
		if err != nil {
			log.Printf("[ScheduleRefresherService] Failed to fetch %s: %v", entry.URL, err)
			continue
		}

		r, err := sr.buildRestaurant(entry, *detail)
		if err != nil {
			log.Printf("[ScheduleRefresherService] Skipping %q: %v", entry.Name, err)
			continue
		}

		if err := sr.restaurantDao.UpsertRestaurant(*r); err != nil {
			log.Printf("[ScheduleRefresherService] Upsert failed for code=%d: %v", r.Code, err)
			continue
		}
		upserted++
	}

	log.Printf("[ScheduleRefresherService] Upserted %d/%d restaurants", upserted, len(index))
	return nil
}

// buildRestaurant parses the scraped text fields into a full record. Parse
// and geocode failures abandon the whole restaurant.
func (sr *ScheduleRefresherService) buildRestaurant(
	entry models.RestaurantIndexEntry,
	detail models.RawRestaurantDetail,
) (*models.Restaurant, error) {
	windows, err := schedule.ParseBusinessHours(detail.BusinessHours)
	if err != nil {
		return nil, err
	}

	closedDays, err := schedule.ParseClosedDays(detail.RegularHoliday)
	if err != nil {
		return nil, err
	}

	lat, lng, err := sr.geocoderAPI.Geocode(detail.Address)
	if err != nil {
		return nil, err
	}

	return &models.Restaurant{
		Code:              detail.Code,
		Name:              detail.Name,
		Course:            entry.Course,
		URL:               entry.URL,
		ThumbnailURL:      entry.ThumbnailURL,
		Address:           detail.Address,
		Lat:               lat,
		Lng:               lng,
		BusinessHours:     windows,
		BusinessHoursRaw:  detail.BusinessHours,
		RegularHoliday:    closedDays,
		RegularHolidayRaw: detail.RegularHoliday,
	}, nil
}
