// README: Quote planner; measures trip legs via the route service and runs the engine.
package service

import (
	"context"
	"fmt"
	"time"

	"chauffeur/internal/modules/quote"
	"chauffeur/internal/types"
)

// RouteEstimator is the slice of the maps route service the planner needs.
type RouteEstimator interface {
	GetTravelEstimate(ctx context.Context, origin, destination string) (distanceKm float64, durationMinutes int, err error)
}

// QuoteComputer is the slice of the quote service the planner needs.
type QuoteComputer interface {
	Preview(ctx context.Context, cmd quote.QuoteCommand) (*quote.Quote, error)
	Create(ctx context.Context, cmd quote.QuoteCommand) (*quote.Record, error)
}

// Planner turns an address-level quoting request into measured trip legs and
// delegates the pricing to the quote service. The return leg is measured with its
// own Directions lookup (destination back to origin) because one-way routing is not
// symmetric.
type Planner struct {
	routes RouteEstimator
	quotes QuoteComputer
	loc    *time.Location
}

func NewPlanner(routes RouteEstimator, quotes QuoteComputer, timezone string) (*Planner, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load location %q: %w", timezone, err)
	}
	return &Planner{routes: routes, quotes: quotes, loc: loc}, nil
}

// PlanCommand is one quoting request as the driver entered it.
type PlanCommand struct {
	VehicleID      types.ID
	DriverID       types.ID
	Origin         string
	Destination    string
	PickupAt       time.Time
	RoundTrip      bool
	WaitingMinutes int
}

// Plan measures the legs and previews the quote without persisting.
func (p *Planner) Plan(ctx context.Context, cmd PlanCommand) (*quote.Quote, error) {
	qc, err := p.buildQuoteCommand(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return p.quotes.Preview(ctx, qc)
}

// PlanAndSave measures the legs, computes the quote and persists the record.
func (p *Planner) PlanAndSave(ctx context.Context, cmd PlanCommand) (*quote.Record, error) {
	qc, err := p.buildQuoteCommand(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return p.quotes.Create(ctx, qc)
}

func (p *Planner) buildQuoteCommand(ctx context.Context, cmd PlanCommand) (quote.QuoteCommand, error) {
	if cmd.Origin == "" || cmd.Destination == "" {
		return quote.QuoteCommand{}, quote.ErrBadRequest
	}

	distanceKm, durationMin, err := p.routes.GetTravelEstimate(ctx, cmd.Origin, cmd.Destination)
	if err != nil {
		return quote.QuoteCommand{}, fmt.Errorf("outbound estimate: %w", err)
	}

	outbound := quote.TripLeg{
		Start:           cmd.PickupAt.In(p.loc),
		DistanceKm:      distanceKm,
		DurationMinutes: durationMin,
	}

	trip := quote.TripInput{Outbound: outbound}

	waitEnd := outbound.End()
	if cmd.WaitingMinutes > 0 {
		trip.Wait = &quote.WaitInterval{Start: outbound.End(), Minutes: cmd.WaitingMinutes}
		waitEnd = waitEnd.Add(time.Duration(cmd.WaitingMinutes) * time.Minute)
	}

	if cmd.RoundTrip {
		retKm, retMin, err := p.routes.GetTravelEstimate(ctx, cmd.Destination, cmd.Origin)
		if err != nil {
			return quote.QuoteCommand{}, fmt.Errorf("return estimate: %w", err)
		}
		trip.Return = &quote.TripLeg{
			Start:           waitEnd,
			DistanceKm:      retKm,
			DurationMinutes: retMin,
		}
	}

	return quote.QuoteCommand{
		VehicleID:   cmd.VehicleID,
		DriverID:    cmd.DriverID,
		Origin:      cmd.Origin,
		Destination: cmd.Destination,
		Trip:        trip,
	}, nil
}
