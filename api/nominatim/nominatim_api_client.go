package nominatim

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"amenities-dashboard/api"
	"amenities-dashboard/models"
)

// ErrNoResults is returned when the geocoder found nothing for the query.
var ErrNoResults = errors.New("no results found")

// place is one element of the Nominatim search response. Coordinates are strings on the wire.
type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (p place) toResult() (*models.GeocodeResult, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", p.Lat, err)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", p.Lon, err)
	}
	return &models.GeocodeResult{Lat: lat, Lon: lon, DisplayName: p.DisplayName}, nil
}

func firstResult(places []place) (*models.GeocodeResult, error) {
	if len(places) == 0 {
		return nil, ErrNoResults
	}
	return places[0].toResult()
}

// NominatimApiClient embeds the common HTTPClient
type NominatimApiClient struct {
	*api.HTTPClient
}

// NewNominatimApiClient creates a new instance of NominatimApiClient
func NewNominatimApiClient(httpClient *api.HTTPClient) *NominatimApiClient {
	return &NominatimApiClient{
		HTTPClient: httpClient,
	}
}

// Search asks Nominatim for the single best match of query.
func (c *NominatimApiClient) Search(ctx context.Context, query string) (*models.GeocodeResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	var response []place
	if err := c.Request(ctx, "GET", "/search?"+params.Encode(), nil, nil, &response); err != nil {
		return nil, err
	}
	return firstResult(response)
}
