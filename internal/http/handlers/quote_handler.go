// README: Quote handlers for preview/create/get.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chauffeur/internal/modules/quote"
	"chauffeur/internal/service"
	"chauffeur/internal/types"
)

// Planner is the slice of the service planner the handler needs.
type Planner interface {
	Plan(ctx context.Context, cmd service.PlanCommand) (*quote.Quote, error)
	PlanAndSave(ctx context.Context, cmd service.PlanCommand) (*quote.Record, error)
}

// QuoteReader fetches stored quotes.
type QuoteReader interface {
	Get(ctx context.Context, id types.ID) (*quote.Record, error)
}

type QuoteHandler struct {
	planner Planner
	quotes  QuoteReader
}

func NewQuoteHandler(planner Planner, quotes QuoteReader) *QuoteHandler {
	return &QuoteHandler{planner: planner, quotes: quotes}
}

type quoteReq struct {
	VehicleID      string `json:"vehicle_id"`
	DriverID       string `json:"driver_id"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	PickupTime     string `json:"pickup_time"` // RFC 3339
	RoundTrip      bool   `json:"round_trip"`
	WaitingMinutes int    `json:"waiting_minutes"`
}

func (r quoteReq) toCommand() (service.PlanCommand, error) {
	pickup, err := time.Parse(time.RFC3339, r.PickupTime)
	if err != nil {
		return service.PlanCommand{}, err
	}
	return service.PlanCommand{
		VehicleID:      types.ID(r.VehicleID),
		DriverID:       types.ID(r.DriverID),
		Origin:         r.Origin,
		Destination:    r.Destination,
		PickupAt:       pickup,
		RoundTrip:      r.RoundTrip,
		WaitingMinutes: r.WaitingMinutes,
	}, nil
}

func (h *QuoteHandler) Preview(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	cmd, err := req.toCommand()
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid pickup_time")
		return
	}
	q, err := h.planner.Plan(c.Request.Context(), cmd)
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	cmd, err := req.toCommand()
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid pickup_time")
		return
	}
	rec, err := h.planner.PlanAndSave(c.Request.Context(), cmd)
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"quote_id": rec.ID, "quote": rec.Quote})
}

func (h *QuoteHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing quote id")
		return
	}
	rec, err := h.quotes.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"quote_id":        rec.ID,
		"vehicle_id":      rec.VehicleID,
		"origin":          rec.Origin,
		"destination":     rec.Destination,
		"pickup_at":       rec.PickupAt,
		"round_trip":      rec.RoundTrip,
		"waiting_minutes": rec.WaitingMinutes,
		"quote":           rec.Quote,
	})
}
