package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"amenities-dashboard/models"
)

// NominatimApiClientMock answers every search from a recorded response file.
type NominatimApiClientMock struct {
	fixturePath string
}

// NewNominatimApiClientMock creates a new instance of NominatimApiClientMock
func NewNominatimApiClientMock(fixturePath string) *NominatimApiClientMock {
	return &NominatimApiClientMock{fixturePath: fixturePath}
}

func (c *NominatimApiClientMock) Search(ctx context.Context, query string) (*models.GeocodeResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrNoResults
	}
	data, err := os.ReadFile(c.fixturePath)
	if err != nil {
		return nil, fmt.Errorf("could not read search response fixture: %w", err)
	}
	var response []place
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("could not decode search response fixture: %w", err)
	}
	return firstResult(response)
}
