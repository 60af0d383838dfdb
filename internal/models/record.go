package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout is the civil-time layout used to persist record timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// ConversionRecord is the immutable audit entry of one conversion.
// ID is zero until the record has been stored. An empty Owner marks a
// guest conversion.
type ConversionRecord struct {
	ID              int64
	Owner           string
	Amount          float64
	FromCurrency    string
	ToCurrency      string
	Rate            float64
	ConvertedAmount float64
	Timestamp       time.Time
}

// FormatAmount renders v with exactly two decimals, rounding half away from zero.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Summary is the short result shown to the user, e.g. "9.00 EUR".
func (r ConversionRecord) Summary() string {
	return fmt.Sprintf("%s %s", FormatAmount(r.ConvertedAmount), r.ToCurrency)
}

func (r ConversionRecord) String() string {
	return fmt.Sprintf("#%d %s  %s %s -> %s (rate %s)",
		r.ID,
		r.Timestamp.Format(TimestampLayout),
		FormatAmount(r.Amount), r.FromCurrency,
		r.Summary(),
		decimal.NewFromFloat(r.Rate).String(),
	)
}
