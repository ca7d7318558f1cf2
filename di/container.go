package di

import (
	"context"
	"fmt"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"amenities-dashboard/api"
	"amenities-dashboard/api/nominatim"
	"amenities-dashboard/config"
	"amenities-dashboard/dao/redis"
	"amenities-dashboard/db"
	"amenities-dashboard/hours"
	"amenities-dashboard/server"
	"amenities-dashboard/server/handlers"
	services "amenities-dashboard/service"
	"amenities-dashboard/util"
)

const GEOCODER_CACHE_SIZE = 10_000

// Container holds all application dependencies.
type Container struct {
	Config                  *config.Config
	RedisClient             db.RedisClient
	RedisAmenityDao         *redis.RedisAmenityDAO
	RedisSessionDao         *redis.RedisSessionDAO
	GeocodeAPI              nominatim.GeocodeAPI
	SessionService          *services.SessionService
	AmenityService          *services.AmenityService
	SearchService           *services.SearchService
	CatalogRefresherService *services.CatalogRefresherService
	AmenityHandler          *handlers.AmenityHandler
	SessionHandler          *handlers.SessionHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	AmenitiesHttpServer     *server.AmenitiesHttpServer
}

// NewContainer initializes and wires up all dependencies against a live Redis.
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Info().Str("env", cfg.Env).Str("redis_addr", cfg.Redis.Addr).Msg("initializing container")

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	redisClient := db.NewGeoRedisClient(context.Background(), redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewContainerWithClient(cfg, redisClient)
}

// Close releases the Redis connection pool.
func (c *Container) Close() error {
	return c.RedisClient.Close()
}

// NewContainerWithClient wires everything on top of an existing Redis client.
func NewContainerWithClient(cfg *config.Config, redisClient db.RedisClient) (*Container, error) {
	mode, err := hours.ParseMode(cfg.Dataset.DayPartMode)
	if err != nil {
		return nil, err
	}

	redisAmenityDao := redis.NewRedisAmenityDAO(redisClient)
	redisSessionDao := redis.NewRedisSessionDAO(redisClient, cfg.SessionTTL())

	var geocodeAPI nominatim.GeocodeAPI
	if !cfg.IsProd() {
		geocodeAPI = nominatim.NewNominatimApiClientMock(config.GetResourcePath(config.NOMINATIM_SEARCH_RESPONSE_RESOURCE))
		log.Info().Msg("Using mock nominatim api")
	} else {
		log.Info().Str("base_url", cfg.Geocoder.BaseURL).Msg("Using prod nominatim api")
		httpClient := api.NewHTTPClient(cfg.Geocoder.BaseURL,
			api.WithUserAgent(cfg.Geocoder.UserAgent),
			api.WithTimeout(cfg.GeocoderTimeout()),
			api.WithRetry(cfg.Geocoder.RetryAttempts, api.DEFAULT_RETRY_DELAY),
			api.WithResponseCache(cfg.GeocoderCacheTTL(), GEOCODER_CACHE_SIZE),
		)
		geocodeAPI = nominatim.NewNominatimApiClient(httpClient)
	}

	sessionService := services.NewSessionService(redisSessionDao)
	amenityService := services.NewAmenityService(redisAmenityDao, sessionService, cfg.Map)
	searchService := services.NewSearchService(geocodeAPI, sessionService)
	catalogRefresherService := services.NewCatalogRefresherService(redisAmenityDao, cfg.Dataset.Path, util.ReadOptions{
		NormalizeMidnight: cfg.Dataset.NormalizeMidnight,
		Mode:              mode,
	})

	amenityHandler := handlers.NewAmenityHandler(amenityService, util.NewChartRenderer())
	sessionHandler := handlers.NewSessionHandler(searchService, sessionService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(amenityHandler, sessionHandler, muxRouter)
	amenitiesHttpServer := server.NewAmenitiesHttpServer(router, muxRouter, cfg.Addr())

	return &Container{
		Config:                  cfg,
		RedisClient:             redisClient,
		RedisAmenityDao:         redisAmenityDao,
		RedisSessionDao:         redisSessionDao,
		GeocodeAPI:              geocodeAPI,
		SessionService:          sessionService,
		AmenityService:          amenityService,
		SearchService:           searchService,
		CatalogRefresherService: catalogRefresherService,
		AmenityHandler:          amenityHandler,
		SessionHandler:          sessionHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		AmenitiesHttpServer:     amenitiesHttpServer,
	}, nil
}
