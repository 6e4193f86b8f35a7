// README: Showcase service runs the fixed rider-history and driver-profile demo.
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"rideshare/internal/modules/driver"
	"rideshare/internal/modules/pricing"
	"rideshare/internal/modules/ride"
	"rideshare/internal/modules/rider"
	"rideshare/internal/types"
)

// SampleRide is one hardcoded trip of the demo run.
type SampleRide struct {
	ID       types.ID
	Type     pricing.RideType
	Pickup   string
	Dropoff  string
	Distance float64
}

// SampleRides returns a fresh copy of the demo trips, in the order they are
// created, attached and reported.
func SampleRides() []SampleRide {
	return []SampleRide{
		{ID: "Trip-STD", Type: pricing.RideTypeStandard, Pickup: "Cinemark", Dropoff: "AMC", Distance: 15.2},
		{ID: "Trip-PRE", Type: pricing.RideTypePremium, Pickup: "Chipotle", Dropoff: "Chick-Fil-A", Distance: 5.5},
		{ID: "Trip-STD2", Type: pricing.RideTypeStandard, Pickup: "T-Mobile", Dropoff: "Verizon", Distance: 8.0},
	}
}

// Showcase runs the fixed demo: one driver, one rider, three rides, two reports.
type Showcase struct {
	pricing *pricing.Service
	log     *slog.Logger
}

func NewShowcase(pricingSvc *pricing.Service, log *slog.Logger) *Showcase {
	if pricingSvc == nil {
		pricingSvc = pricing.NewService(nil)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Showcase{pricing: pricingSvc, log: log}
}

func (s *Showcase) Run(ctx context.Context, w io.Writer) error {
	d := driver.New("D001", "Tadigotla", 4.9)
	r := rider.New("R99", "Vishnu")

	rides := ride.NewLedger()
	defer func() {
		rides.Release()
		s.log.Debug("rides released", slog.String("action", "release"))
	}()

	samples := SampleRides()
	refs := make([]ride.Ref, 0, len(samples))
	for _, sample := range samples {
		strategy, err := s.pricing.Strategy(ctx, sample.Type)
		if err != nil {
			return fmt.Errorf("ride %s: %w", sample.ID, err)
		}
		rd, err := ride.New(sample.ID, sample.Pickup, sample.Dropoff, sample.Distance, strategy)
		if err != nil {
			return fmt.Errorf("ride %s: %w", sample.ID, err)
		}
		refs = append(refs, rides.Add(rd))
		s.log.Debug("ride created",
			slog.String("action", "create_ride"),
			slog.String("ride_id", string(rd.ID())),
			slog.String("ride_type", string(rd.Type())),
		)
	}

	for _, ref := range refs {
		d.AddRide(ref)
		r.RequestRide(ref)
	}

	if err := r.WriteHistory(w, rides); err != nil {
		return err
	}
	s.log.Info("report rendered", slog.String("action", "rider_history"), slog.String("rider_id", string(r.ID)))

	if err := d.WriteProfile(w, rides); err != nil {
		return err
	}
	s.log.Info("report rendered", slog.String("action", "driver_profile"), slog.String("driver_id", string(d.ID)))
	return nil
}
