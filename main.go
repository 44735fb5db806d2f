package main

import (
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"kanda-curry/config"
	"kanda-curry/dao/redis"
	"kanda-curry/di"
	"kanda-curry/models"
	"kanda-curry/util"
)

func plotStoredRestaurants(restaurantDao *redis.RedisRestaurantDAO) {
	codes, err := restaurantDao.ListAllRestaurantCodes()
	if err != nil {
		log.Printf("[MAIN] Failed to list restaurant codes: %v", err)
		return
	}

	restaurants := make([]models.Restaurant, 0, len(codes))
	for _, code := range codes {
		r, err := restaurantDao.GetRestaurant(code)
		if err != nil {
			log.Printf("[MAIN] Failed to load restaurant code=%d: %v", code, err)
			continue
		}
		restaurants = append(restaurants, *r)
	}

	outputPath := config.GetResourcePath(config.RESTAURANT_MAP_OUTPUT)
	if err := util.PlotRestaurantMap(restaurants, outputPath); err != nil {
		log.Printf("[MAIN] Failed to plot restaurant map: %v", err)
		return
	}
	log.Printf("[MAIN] Plotted %d restaurants to %s", len(restaurants), outputPath)
}

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	container := di.NewContainer(env)

	fmt.Println("refreshing schedules!")
	if err := container.ScheduleRefresherService.RefreshSchedules(); err != nil {
		log.Printf("[MAIN] Initial schedule refresh failed: %v", err)
	}

	plotStoredRestaurants(container.RestaurantDao)

	fmt.Println("starting periodic job!")
	container.ScheduleRefresherService.StartPeriodicJob(config.SCHEDULE_REFRESHER_INTERVAL_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.KandaCurryHttpServer.Start()
}
