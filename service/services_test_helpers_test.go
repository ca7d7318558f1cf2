package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"amenities-dashboard/config"
	"amenities-dashboard/dao/redis"
	"amenities-dashboard/db"
	"amenities-dashboard/hours"
	"amenities-dashboard/models"
	"amenities-dashboard/models/amenity"
)

type fixture struct {
	client     *db.MockRedisClient
	amenityDao *redis.RedisAmenityDAO
	sessions   *SessionService
	amenities  *AmenityService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	client := db.NewMockRedisClient(context.Background())
	amenityDao := redis.NewRedisAmenityDAO(client)
	sessions := NewSessionService(redis.NewRedisSessionDAO(client, 0))
	return &fixture{
		client:     client,
		amenityDao: amenityDao,
		sessions:   sessions,
		amenities: NewAmenityService(amenityDao, sessions, config.MapConfig{
			MarkerLimit: 300,
			TileStyles:  map[string]string{"dawn": "dawn-tiles", "day": "day-tiles", "dusk": "dusk-tiles", "night": "night-tiles"},
		}),
	}
}

func newAmenity(t *testing.T, name, kind string, lat, lon float64, open, close string) amenity.Amenity {
	t.Helper()
	o, err := hours.ParseTimeOfDay(open)
	require.NoError(t, err)
	c, err := hours.ParseTimeOfDay(close)
	require.NoError(t, err)
	a := amenity.Amenity{
		ID:          amenity.NewID(name, lat, lon),
		Name:        name,
		AmenityType: kind,
		Latitude:    lat,
		Longitude:   lon,
		OpeningTime: o,
		ClosingTime: c,
	}
	require.NoError(t, a.Annotate(hours.ModeLegacy))
	return a
}

func (f *fixture) store(t *testing.T, list ...amenity.Amenity) {
	t.Helper()
	for _, a := range list {
		require.NoError(t, f.amenityDao.UpsertAmenity(a))
	}
}

func (f *fixture) saveSession(t *testing.T, s *models.Session) {
	t.Helper()
	require.NoError(t, f.sessions.Save(s))
}
