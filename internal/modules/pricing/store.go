// README: Pricing store backed by the in-process rate card.
package pricing

import (
	"context"
	"fmt"
)

type Store struct {
	rates map[RideType]Rate
}

func NewStore() *Store {
	rates := make(map[RideType]Rate, len(defaultRates))
	for _, r := range defaultRates {
		rates[r.RideType] = r
	}
	return &Store{rates: rates}
}

func (s *Store) GetRate(ctx context.Context, rideType RideType) (Rate, error) {
	r, ok := s.rates[rideType]
	if !ok {
		return Rate{}, fmt.Errorf("%w: %q", ErrUnknownRideType, rideType)
	}
	return r, nil
}
