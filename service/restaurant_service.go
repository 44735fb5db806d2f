package services

import (
	"time"

	"kanda-curry/dao/redis"
	"kanda-curry/models"
	"kanda-curry/schedule"
)

// RestaurantService answers availability queries over the stored records.
type RestaurantService struct {
	restaurantDao *redis.RedisRestaurantDAO
}

// NewRestaurantService constructs a RestaurantService with its DAO.
func NewRestaurantService(restaurantDao *redis.RedisRestaurantDAO) *RestaurantService {
	return &RestaurantService{
		restaurantDao: restaurantDao,
	}
}

func (rs *RestaurantService) GetRestaurantsNearby(lat, lng, radiusKM float64) ([]models.Restaurant, error) {
	return rs.restaurantDao.GetNearbyRestaurants(lat, lng, radiusKM)
}

func (rs *RestaurantService) GetRestaurant(code int) (*models.Restaurant, error) {
	return rs.restaurantDao.GetRestaurant(code)
}

// EvaluateAt computes a restaurant's availability at the query instant.
func (rs *RestaurantService) EvaluateAt(r models.Restaurant, at time.Time) schedule.AvailabilityResult {
	return schedule.Evaluate(r.Schedule(), at)
}
