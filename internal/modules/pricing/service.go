// README: Pricing service resolves fare strategies and computes fare estimates.
package pricing

import (
	"context"
	"errors"

	"rideshare/internal/types"
)

var ErrUnknownRideType = errors.New("unknown ride type")

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	if store == nil {
		store = NewStore()
	}
	return &Service{store: store}
}

func (s *Service) Strategy(ctx context.Context, rideType RideType) (FareStrategy, error) {
	rate, err := s.store.GetRate(ctx, rideType)
	if err != nil {
		return nil, err
	}
	return linearFare{rate: rate}, nil
}

func (s *Service) Estimate(ctx context.Context, distance float64, rideType RideType) (types.Money, error) {
	rate, err := s.store.GetRate(ctx, rideType)
	if err != nil {
		return types.Money{}, err
	}
	return types.Money{
		Amount:   linearFare{rate: rate}.Fare(distance),
		Currency: rate.Currency,
	}, nil
}

// Standard and Premium back the ride constructors; the rate card always has them.
func Standard() FareStrategy { return mustStrategy(RideTypeStandard) }

func Premium() FareStrategy { return mustStrategy(RideTypePremium) }

// Base is the generic 1.50/mile formula.
func Base() FareStrategy { return mustStrategy(RideTypeBase) }

func mustStrategy(rideType RideType) FareStrategy {
	s, err := NewService(nil).Strategy(context.Background(), rideType)
	if err != nil {
		panic(err)
	}
	return s
}
