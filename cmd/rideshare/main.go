// README: Entry point; loads config, wires pricing and prints the rider and driver reports.
package main

import (
	"context"
	"log"
	"os"

	"rideshare/internal/config"
	"rideshare/internal/logger"
	"rideshare/internal/modules/pricing"
	"rideshare/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logg := logger.New(cfg)

	pricingStore := pricing.NewStore()
	pricingSvc := pricing.NewService(pricingStore)

	showcase := service.NewShowcase(pricingSvc, logg)
	if err := showcase.Run(context.Background(), os.Stdout); err != nil {
		logg.Error("showcase failed", "error", err)
		os.Exit(1)
	}
}
