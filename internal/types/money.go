// README: Common money value object used across modules.
package types

import "strconv"

const CurrencyUSD = "USD"

// Money keeps the amount at full precision; rounding only happens in String.
type Money struct {
	Amount   float64
	Currency string
}

func USD(amount float64) Money {
	return Money{Amount: amount, Currency: CurrencyUSD}
}

// String renders the amount with exactly two decimals.
func (m Money) String() string {
	amount := strconv.FormatFloat(m.Amount, 'f', 2, 64)
	if m.Currency == "" || m.Currency == CurrencyUSD {
		return "$" + amount
	}
	return amount + " " + m.Currency
}
