// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"chauffeur/internal/modules/quote"
	"chauffeur/internal/modules/rates"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

func writeQuoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, quote.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, quote.ErrNotFound), errors.Is(err, rates.ErrVehicleNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, quote.ErrNotComputable):
		// Insufficient data, not a failure: the caller re-submits on the next change.
		writeError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeRatesError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, rates.ErrBadProfile):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, rates.ErrVehicleNotFound), errors.Is(err, rates.ErrDefaultsNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
