// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chauffeur/internal/http/handlers"
	"chauffeur/internal/http/middleware"
)

func NewRouter(
	planner handlers.Planner,
	quoteReader handlers.QuoteReader,
	ratesManager handlers.RatesManager,
) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	quoteHandler := handlers.NewQuoteHandler(planner, quoteReader)
	r.POST("/api/quotes/preview", quoteHandler.Preview)
	r.POST("/api/quotes", quoteHandler.Create)
	r.GET("/api/quotes/:id", quoteHandler.Get)

	ratesHandler := handlers.NewRatesHandler(ratesManager)
	r.GET("/api/vehicles/:id/rates", ratesHandler.GetVehicle)
	r.PUT("/api/vehicles/:id/rates", ratesHandler.PutVehicle)
	r.GET("/api/drivers/:id/defaults", ratesHandler.GetDriverDefaults)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
