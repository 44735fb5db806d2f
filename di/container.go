package di

import (
	"context"
	"fmt"
	"log"
	"time"

	"kanda-curry/api"
	"kanda-curry/api/geocode"
	"kanda-curry/api/kandagp"
	"kanda-curry/config"
	"kanda-curry/dao/redis"
	"kanda-curry/db"
	"kanda-curry/server"
	"kanda-curry/server/handlers"
	services "kanda-curry/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient              db.RedisClient
	RestaurantDao            *redis.RedisRestaurantDAO
	KandaGpAPI               kandagp.KandaGpAPI
	GeocoderAPI              geocode.GeocoderAPI
	RestaurantService        *services.RestaurantService
	RestaurantHandler        *handlers.RestaurantHandler
	MuxRouter                *mux.Router
	Router                   *server.Router
	KandaCurryHttpServer     *server.KandaCurryHttpServer
	ScheduleRefresherService *services.ScheduleRefresherService
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.RedisAddress(),
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	redisClient := db.NewGeoRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	restaurantDao := redis.NewRedisRestaurantDAO(redisClient)

	var kandaGpAPI kandagp.KandaGpAPI
	var geocoderAPI geocode.GeocoderAPI
	var crawlDelay time.Duration
	if env != "prod" {
		log.Printf("Using mock kanda gp api and geocoder")
		kandaGpAPI = kandagp.NewKandaGpApiClientMock(
			config.GetResourcePath(config.RESTAURANT_INDEX_RESOURCE),
			config.GetResourcePath(config.RESTAURANT_DETAILS_RESOURCE),
		)
		geocoderAPI = geocode.NewGeocoderClientMock()
	} else {
		log.Printf("Using prod kanda gp api and geocoder")
		kandaGpAPI = kandagp.NewKandaGpApiClient(api.NewHTTPClient(config.KANDA_GP_BASE_URL))
		geocoderAPI = geocode.NewGsiGeocoderClient(api.NewHTTPClient(config.GEOCODER_BASE_URL))
		crawlDelay = config.KANDA_GP_CRAWL_DELAY_MILLIS * time.Millisecond
	}

	restaurantService := services.NewRestaurantService(restaurantDao)

	restaurantHandler := handlers.NewRestaurantHandler(restaurantService)

	muxRouter := mux.NewRouter()

	router := server.NewRouter(restaurantHandler, muxRouter)

	kandaCurryHttpServer := server.NewKandaCurryHttpServer(router, muxRouter)

	scheduleRefresherService := services.NewScheduleRefresherService(
		restaurantDao, kandaGpAPI, geocoderAPI, crawlDelay)

	return &Container{
		RedisClient:              redisClient,
		RestaurantDao:            restaurantDao,
		KandaGpAPI:               kandaGpAPI,
		GeocoderAPI:              geocoderAPI,
		RestaurantService:        restaurantService,
		RestaurantHandler:        restaurantHandler,
		MuxRouter:                muxRouter,
		Router:                   router,
		KandaCurryHttpServer:     kandaCurryHttpServer,
		ScheduleRefresherService: scheduleRefresherService,
	}
}
