package services

import (
	"testing"

	"kanda-curry/api/geocode"
	"kanda-curry/api/kandagp"
	"kanda-curry/dao/redis"
	"kanda-curry/db"
)

const (
	indexFixture   = "../resources/restaurant_index.json"
	detailsFixture = "../resources/restaurant_details.json"
)

func newTestRefresher() (*ScheduleRefresherService, *redis.RedisRestaurantDAO) {
	dao := redis.NewRedisRestaurantDAO(db.NewMockRedisClient())
	refresher := NewScheduleRefresherService(
		dao,
		kandagp.NewKandaGpApiClientMock(indexFixture, detailsFixture),
		geocode.NewGeocoderClientMock(),
		0,
	)
	return refresher, dao
}

func TestRefreshSchedulesUpsertsAllFixtures(t *testing.T) {
	refresher, dao := newTestRefresher()

	if err := refresher.RefreshSchedules(); err != nil {
		t.Fatalf("RefreshSchedules failed: %v", err)
	}

	codes, err := dao.ListAllRestaurantCodes()
	if err != nil {
		t.Fatalf("ListAllRestaurantCodes failed: %v", err)
	}
	if len(codes) != 5 {
		t.Errorf("got %d stored restaurants, want 5", len(codes))
	}
}

func TestRefreshSchedulesParsesFixtureText(t *testing.T) {
	refresher, dao := newTestRefresher()

	if err := refresher.RefreshSchedules(); err != nil {
		t.Fatalf("RefreshSchedules failed: %v", err)
	}

	r, err := dao.GetRestaurant(102)
	if err != nil {
		t.Fatalf("GetRestaurant failed: %v", err)
	}

	// 平日 expands to five windows, 土日祝 to three more
	if len(r.BusinessHours) != 8 {
		t.Errorf("got %d windows, want 8", len(r.BusinessHours))
	}
	if len(r.RegularHoliday) != 1 {
		t.Errorf("got closed days %v, want one token", r.RegularHoliday)
	}
	if r.Lat == 0 || r.Lng == 0 {
		t.Error("expected geocoded coordinates")
	}
}

func TestRefreshSchedulesStoresRawText(t *testing.T) {
	refresher, dao := newTestRefresher()

	if err := refresher.RefreshSchedules(); err != nil {
		t.Fatalf("RefreshSchedules failed: %v", err)
	}

	r, err := dao.GetRestaurant(101)
	if err != nil {
		t.Fatalf("GetRestaurant failed: %v", err)
	}
	if r.BusinessHoursRaw == "" || r.RegularHolidayRaw == "" {
		t.Error("raw text fields must survive the refresh")
	}
}
