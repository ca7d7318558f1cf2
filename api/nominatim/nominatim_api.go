package nominatim

import (
	"context"

	"amenities-dashboard/models"
)

// GeocodeAPI resolves a free text location to its best match.
type GeocodeAPI interface {
	Search(ctx context.Context, query string) (*models.GeocodeResult, error)
}
