package wealth

import (
	"strings"

	"github.com/shopspring/decimal"
)

// amount parses a stored decimal string. Malformed or empty values coerce
// to zero: the dashboard must keep rendering arbitrary historical data,
// and rejecting bad writes is the job of the validation layer upstream.
// Every numeric field in this package goes through this one helper.
func amount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// amountFloat is amount collapsed to a float64 for JSON output.
func amountFloat(s string) float64 {
	return amount(s).InexactFloat64()
}
