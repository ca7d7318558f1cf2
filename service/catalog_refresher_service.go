package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"amenities-dashboard/dao/redis"
	"amenities-dashboard/util"
)

// RefreshReport summarizes one dataset load.
type RefreshReport struct {
	Loaded     int               `json:"loaded"`
	Upserted   int               `json:"upserted"`
	Duplicates int               `json:"duplicates"`
	Deleted    int               `json:"deleted"`
	Failed     int               `json:"failed"`
	Warnings   []util.RowWarning `json:"warnings,omitempty"`
}

// CatalogRefresherService loads the dataset file into the catalog store.
type CatalogRefresherService struct {
	amenityDao  *redis.RedisAmenityDAO
	datasetPath string
	readOptions util.ReadOptions
}

// NewCatalogRefresherService constructs a new refresher with dependencies.
func NewCatalogRefresherService(
	amenityDao *redis.RedisAmenityDAO,
	datasetPath string,
	readOptions util.ReadOptions,
) *CatalogRefresherService {
	return &CatalogRefresherService{
		amenityDao:  amenityDao,
		datasetPath: datasetPath,
		readOptions: readOptions,
	}
}

// StartPeriodicJob launches the background loop at the given interval until ctx is done.
func (cr *CatalogRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go cr.startPeriodicJob(ctx, interval)
}

func (cr *CatalogRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("[CatalogRefresherService] Periodic job stopped.")
			return
		case <-ticker.C:
			log.Info().Msg("[CatalogRefresherService] Running periodic catalog refresher job.")
			if _, err := cr.RefreshAmenitiesData(); err != nil {
				log.Error().Err(err).Msg("[CatalogRefresherService] RefreshAmenitiesData returned error")
			}
		}
	}
}

// RefreshAmenitiesData loads, dedupes and upserts the dataset, then removes
// stored amenities that are no longer in it.
func (cr *CatalogRefresherService) RefreshAmenitiesData() (*RefreshReport, error) {
	amenities, warnings, err := util.ReadAmenities(cr.datasetPath, cr.readOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %q: %w", cr.datasetPath, err)
	}
	for _, w := range warnings {
		log.Warn().Int("row", w.Row).Str("reason", w.Reason).Msg("[CatalogRefresherService] Skipping dataset row")
	}

	report := &RefreshReport{Loaded: len(amenities), Warnings: warnings}
	seen := make(map[string]struct{}, len(amenities))
	for _, a := range amenities {
		if _, dup := seen[a.ID]; dup {
			log.Debug().Str("name", a.Name).Msg("[CatalogRefresherService] Skipping duplicate amenity")
			report.Duplicates++
			continue
		}
		seen[a.ID] = struct{}{}

		if err := cr.amenityDao.UpsertAmenity(a); err != nil {
			log.Error().Err(err).Str("amenity_id", a.ID).Msg("[CatalogRefresherService] Upsert failed")
			report.Failed++
			continue
		}
		report.Upserted++
	}

	storedIDs, err := cr.amenityDao.ListAllAmenityIDs()
	if err != nil {
		return report, fmt.Errorf("failed to list stored amenities: %w", err)
	}
	for _, id := range storedIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		if err := cr.amenityDao.DeleteAmenity(id); err != nil {
			log.Error().Err(err).Str("amenity_id", id).Msg("[CatalogRefresherService] Failed to delete stale amenity")
			report.Failed++
			continue
		}
		report.Deleted++
	}

	log.Info().
		Int("loaded", report.Loaded).
		Int("upserted", report.Upserted).
		Int("duplicates", report.Duplicates).
		Int("deleted", report.Deleted).
		Int("warnings", len(report.Warnings)).
		Msg("[CatalogRefresherService] Refresh completed")
	return report, nil
}
