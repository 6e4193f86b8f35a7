// README: Ride value; immutable once built, priced by a pricing.FareStrategy.
package ride

import (
	"errors"
	"strconv"
	"strings"

	"rideshare/internal/modules/pricing"
	"rideshare/internal/types"
)

var ErrNoStrategy = errors.New("ride has no fare strategy")

type Ride struct {
	id       types.ID
	pickup   string
	dropoff  string
	distance float64
	fare     pricing.FareStrategy
}

// New builds a ride. An empty id is replaced by a generated one.
func New(id types.ID, pickup, dropoff string, distance float64, fare pricing.FareStrategy) (*Ride, error) {
	if fare == nil {
		return nil, ErrNoStrategy
	}
	return &Ride{
		id:       id.OrNew(),
		pickup:   pickup,
		dropoff:  dropoff,
		distance: distance,
		fare:     fare,
	}, nil
}

func NewStandard(id types.ID, pickup, dropoff string, distance float64) *Ride {
	r, _ := New(id, pickup, dropoff, distance, pricing.Standard())
	return r
}

func NewPremium(id types.ID, pickup, dropoff string, distance float64) *Ride {
	r, _ := New(id, pickup, dropoff, distance, pricing.Premium())
	return r
}

func (r *Ride) ID() types.ID { return r.id }

func (r *Ride) Pickup() string { return r.pickup }

func (r *Ride) Dropoff() string { return r.dropoff }

func (r *Ride) Distance() float64 { return r.distance }

func (r *Ride) Type() pricing.RideType { return r.fare.Type() }

func (r *Ride) Fare() float64 {
	return r.fare.Fare(r.distance)
}

func (r *Ride) FareMoney() types.Money {
	return types.USD(r.Fare())
}

// Describe renders "<prefix>[ID: id] From: a To: b (d miles)".
func (r *Ride) Describe() string {
	var b strings.Builder
	b.WriteString(r.fare.Prefix())
	b.WriteString("[ID: ")
	b.WriteString(string(r.id))
	b.WriteString("] From: ")
	b.WriteString(r.pickup)
	b.WriteString(" To: ")
	b.WriteString(r.dropoff)
	b.WriteString(" (")
	b.WriteString(FormatNumber(r.distance))
	b.WriteString(" miles)")
	return b.String()
}

// FormatNumber prints at most six significant digits, switching to
// exponent form for large or tiny values: 15.2, 8, 0.333333, 1.23457e+06.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
