package redis

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"amenities-dashboard/db"
	"amenities-dashboard/models/amenity"
)

const AMENITIES_GEO_KEY_V1 = "amenities_geo_v1"
const AMENITIES_GEO_PLACE_MEMBER_FORMAT_V1 = "amenities_geo_place_v1:%s"

// RedisAmenityDAO stores annotated amenities in a Redis geo index.
type RedisAmenityDAO struct {
	client db.RedisClient
}

// NewRedisAmenityDAO initializes a RedisAmenityDAO with the Redis client.
func NewRedisAmenityDAO(client db.RedisClient) *RedisAmenityDAO {
	return &RedisAmenityDAO{client: client}
}

func memberKey(id string) string {
	return fmt.Sprintf(AMENITIES_GEO_PLACE_MEMBER_FORMAT_V1, id)
}

// UpsertAmenity stores the amenity as a geolocation with the amenity's JSON data.
func (dao *RedisAmenityDAO) UpsertAmenity(a amenity.Amenity) error {
	ctx := dao.client.GetContext()
	return dao.client.AddLocationWithJSON(ctx, AMENITIES_GEO_KEY_V1, memberKey(a.ID), a.Latitude, a.Longitude, a)
}

// GetNearbyAmenities retrieves amenities within radius km, nearest first.
func (dao *RedisAmenityDAO) GetNearbyAmenities(lat, lon, radius float64) ([]amenity.Amenity, error) {
	amenitiesJSON, err := dao.client.GetLocationsWithinRadius(AMENITIES_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisAmenityDAO] failed to get amenities: %w", err)
	}

	out := make([]amenity.Amenity, len(amenitiesJSON))
	for i, raw := range amenitiesJSON {
		if err := json.Unmarshal([]byte(raw), &out[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal amenity JSON: %w", err)
		}
	}
	return out, nil
}

// ListAmenities returns every stored amenity ordered by name.
func (dao *RedisAmenityDAO) ListAmenities() ([]amenity.Amenity, error) {
	ids, err := dao.ListAllAmenityIDs()
	if err != nil {
		return nil, err
	}

	out := make([]amenity.Amenity, 0, len(ids))
	for _, id := range ids {
		raw, err := dao.client.Get(memberKey(id))
		if err != nil {
			log.Warn().Err(err).Str("amenity_id", id).Msg("[RedisAmenityDAO] amenity listed but not readable")
			continue
		}
		var a amenity.Amenity
		if err := json.Unmarshal([]byte(raw), &a); err != nil {
			return nil, fmt.Errorf("failed to unmarshal amenity %s: %w", id, err)
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ListAllAmenityIDs returns all amenity IDs present in the geo index.
func (dao *RedisAmenityDAO) ListAllAmenityIDs() ([]string, error) {
	keys, err := dao.client.Keys(memberKey("*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list amenity keys: %w", err)
	}
	prefix := memberKey("")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// DeleteAmenity removes the amenity from the geo index.
func (dao *RedisAmenityDAO) DeleteAmenity(id string) error {
	if err := dao.client.RemoveLocation(AMENITIES_GEO_KEY_V1, memberKey(id)); err != nil {
		return fmt.Errorf("failed to delete amenity %s: %w", id, err)
	}
	return nil
}
