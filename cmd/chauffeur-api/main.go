// README: Entry point; loads config, wires stores and services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"chauffeur/internal/config"
	httptransport "chauffeur/internal/http"
	"chauffeur/internal/infra"
	"chauffeur/internal/maps"
	"chauffeur/internal/modules/quote"
	"chauffeur/internal/modules/rates"
	"chauffeur/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Maps.APIKey == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY is required")
	}
	routeService, err := maps.NewRouteService(cfg.Maps.APIKey, cfg.Maps.Region)
	if err != nil {
		log.Fatalf("maps init: %v", err)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	ratesStore := rates.NewStore(dbPool)
	ratesCache := rates.NewCache(redisClient)
	ratesSvc := rates.NewService(ratesStore, ratesCache)

	quoteStore := quote.NewStore(dbPool)
	quoteSvc := quote.NewService(ratesSvc, quoteStore, quote.VATRates{
		RideRate:    cfg.VAT.RideRate,
		WaitingRate: cfg.VAT.WaitingRate,
	})

	planner, err := service.NewPlanner(routeService, quoteSvc, cfg.Timezone)
	if err != nil {
		log.Fatalf("planner init: %v", err)
	}

	handler := httptransport.NewRouter(planner, quoteSvc, ratesSvc)

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
