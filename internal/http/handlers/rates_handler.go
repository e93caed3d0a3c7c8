// README: Rate-profile handlers; reads and writes the tariff configuration.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"chauffeur/internal/modules/quote"
	"chauffeur/internal/modules/rates"
	"chauffeur/internal/types"
)

// RatesManager is the slice of the rates service the handler needs.
type RatesManager interface {
	Vehicle(ctx context.Context, id types.ID) (*rates.VehicleRateProfile, error)
	SaveVehicle(ctx context.Context, v *rates.VehicleRateProfile) error
	DriverDefaults(ctx context.Context, driverID types.ID) (*rates.DriverPricingDefaults, error)
}

type RatesHandler struct {
	rates RatesManager
}

func NewRatesHandler(svc RatesManager) *RatesHandler {
	return &RatesHandler{rates: svc}
}

type vehicleRatesReq struct {
	DriverID                string   `json:"driver_id"`
	Name                    string   `json:"name"`
	BasePricePerKm          *float64 `json:"base_price_per_km"`
	NightRateEnabled        *bool    `json:"night_rate_enabled"`
	NightRateStart          *string  `json:"night_rate_start"`
	NightRateEnd            *string  `json:"night_rate_end"`
	NightRatePercentage     *float64 `json:"night_rate_percentage"`
	HolidaySundayPercentage *float64 `json:"holiday_sunday_percentage"`
	MinimumTripFare         *float64 `json:"minimum_trip_fare"`
	MinTripDistanceKm       *float64 `json:"min_trip_distance_km"`
	WaitPricePer15Min       *float64 `json:"wait_price_per_15_min"`
	WaitNightEnabled        *bool    `json:"wait_night_enabled"`
	WaitNightStart          *string  `json:"wait_night_start"`
	WaitNightEnd            *string  `json:"wait_night_end"`
	WaitNightPercentage     *float64 `json:"wait_night_percentage"`
}

// validClocks rejects malformed HH:MM values on write so the engine only ever sees
// well-formed windows in persisted profiles.
func (r vehicleRatesReq) validClocks() bool {
	for _, v := range []*string{r.NightRateStart, r.NightRateEnd, r.WaitNightStart, r.WaitNightEnd} {
		if v == nil || *v == "" {
			continue
		}
		if _, err := quote.ParseClock(*v); err != nil {
			return false
		}
	}
	return true
}

func (h *RatesHandler) GetVehicle(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing vehicle id")
		return
	}
	v, err := h.rates.Vehicle(c.Request.Context(), types.ID(id))
	if err != nil {
		writeRatesError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *RatesHandler) PutVehicle(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing vehicle id")
		return
	}
	var req vehicleRatesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if !req.validClocks() {
		writeError(c, http.StatusBadRequest, "time-of-day fields must be HH:MM")
		return
	}

	v := &rates.VehicleRateProfile{
		ID:                      types.ID(id),
		DriverID:                types.ID(req.DriverID),
		Name:                    req.Name,
		BasePricePerKm:          req.BasePricePerKm,
		NightRateEnabled:        req.NightRateEnabled,
		NightRateStart:          req.NightRateStart,
		NightRateEnd:            req.NightRateEnd,
		NightRatePercentage:     req.NightRatePercentage,
		HolidaySundayPercentage: req.HolidaySundayPercentage,
		MinimumTripFare:         req.MinimumTripFare,
		MinTripDistanceKm:       req.MinTripDistanceKm,
		WaitPricePer15Min:       req.WaitPricePer15Min,
		WaitNightEnabled:        req.WaitNightEnabled,
		WaitNightStart:          req.WaitNightStart,
		WaitNightEnd:            req.WaitNightEnd,
		WaitNightPercentage:     req.WaitNightPercentage,
	}
	if err := h.rates.SaveVehicle(c.Request.Context(), v); err != nil {
		writeRatesError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *RatesHandler) GetDriverDefaults(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing driver id")
		return
	}
	d, err := h.rates.DriverDefaults(c.Request.Context(), types.ID(id))
	if err != nil {
		writeRatesError(c, err)
		return
	}
	if d == nil {
		writeError(c, http.StatusNotFound, rates.ErrDefaultsNotFound.Error())
		return
	}
	c.JSON(http.StatusOK, d)
}
