// README: Pricing rate definition for each ride type.
package pricing

import "rideshare/internal/types"

type RideType string

const (
	RideTypeBase     RideType = "base"
	RideTypeStandard RideType = "standard"
	RideTypePremium  RideType = "premium"
)

// Rate is a linear fare: distance * PerMile + BookingFee.
type Rate struct {
	RideType   RideType
	PerMile    float64
	BookingFee float64
	// Prefix is printed in front of the ride description.
	Prefix   string
	Currency string
}

// defaultRates holds the fixed rate card. The base rate is the fallback
// formula for a generic ride and is not offered by the demo.
var defaultRates = []Rate{
	{RideType: RideTypeBase, PerMile: 1.50, Currency: types.CurrencyUSD},
	{RideType: RideTypeStandard, PerMile: 1.25, Prefix: "Standard Ride ", Currency: types.CurrencyUSD},
	{RideType: RideTypePremium, PerMile: 2.50, BookingFee: 5.00, Prefix: "Premium Ride  ", Currency: types.CurrencyUSD},
}
