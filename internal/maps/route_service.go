package maps

import (
	"context"
	"fmt"
	"math"

	"googlemaps.github.io/maps"
)

// RouteService handles interactions with the Google Maps Directions API.
type RouteService struct {
	client *maps.Client
	region string
}

// NewRouteService creates a RouteService with the given API key. The region biases
// geocoding of bare addresses (e.g. "fr").
func NewRouteService(apiKey, region string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client, region: region}, nil
}

// GetTravelEstimate returns the driving distance in km and the duration in whole
// minutes for a trip from origin to destination.
func (s *RouteService) GetTravelEstimate(ctx context.Context, origin, destination string) (float64, int, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
		Region:      s.region,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return 0, 0, fmt.Errorf("maps api error: %w", err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return 0, 0, fmt.Errorf("no route found")
	}

	leg := routes[0].Legs[0]
	distanceKm := float64(leg.Distance.Meters) / 1000
	durationMin := int(math.Round(leg.Duration.Minutes()))
	return distanceKm, durationMin, nil
}
