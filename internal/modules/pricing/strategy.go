// README: Fare strategies; one linear formula per ride type.
package pricing

// FareStrategy computes the fare and description prefix for one ride type.
type FareStrategy interface {
	Type() RideType
	Prefix() string
	Fare(distance float64) float64
}

type linearFare struct {
	rate Rate
}

func (l linearFare) Type() RideType { return l.rate.RideType }

func (l linearFare) Prefix() string { return l.rate.Prefix }

// Fare is not rounded; callers round when rendering.
func (l linearFare) Fare(distance float64) float64 {
	return distance*l.rate.PerMile + l.rate.BookingFee
}
