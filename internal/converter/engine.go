// Package converter implements the conversion engine: it validates user
// input against a rate table and produces a ConversionRecord. It performs
// no I/O; persisting the record is the store's job.
package converter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophfx/internal/common"
	"github.com/dmitrijs2005/gophfx/internal/models"
)

// Engine converts amounts using a rate table. Timestamps are taken from the
// engine clock in the engine location.
type Engine struct {
	loc *time.Location
	now func() time.Time
}

// NewEngine returns an Engine stamping records in loc. A nil loc means UTC.
func NewEngine(loc *time.Location) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{loc: loc, now: time.Now}
}

// Location is the zone record timestamps are expressed in.
func (e *Engine) Location() *time.Location { return e.loc }

// Convert validates the raw inputs and returns the resulting record.
//
// Checks run in order and stop at the first failure:
//  1. amount, from or to blank: common.ErrMissingField
//  2. amount not a positive finite number: common.ErrInvalidAmount
//  3. from or to absent from rates: common.ErrUnknownCurrency
//
// The record's Owner and ID are left empty.
func (e *Engine) Convert(amount, from, to string, rates models.RateTable) (models.ConversionRecord, error) {
	var zero models.ConversionRecord

	amount = strings.TrimSpace(amount)
	from = models.NormalizeCode(from)
	to = models.NormalizeCode(to)

	switch {
	case amount == "":
		return zero, fmt.Errorf("%w: amount", common.ErrMissingField)
	case from == "":
		return zero, fmt.Errorf("%w: from currency", common.ErrMissingField)
	case to == "":
		return zero, fmt.Errorf("%w: to currency", common.ErrMissingField)
	}

	value, err := ParseAmount(amount)
	if err != nil {
		return zero, err
	}

	fromRate, ok := rates.Rate(from)
	if !ok {
		return zero, fmt.Errorf("%w: %s", common.ErrUnknownCurrency, from)
	}
	toRate, ok := rates.Rate(to)
	if !ok {
		return zero, fmt.Errorf("%w: %s", common.ErrUnknownCurrency, to)
	}

	rate := toRate / fromRate

	return models.ConversionRecord{
		Amount:          value,
		FromCurrency:    from,
		ToCurrency:      to,
		Rate:            rate,
		ConvertedAmount: value * rate,
		Timestamp:       e.now().In(e.loc).Truncate(time.Second),
	}, nil
}

// ParseAmount parses s as a positive finite decimal number.
func ParseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", common.ErrInvalidAmount, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a finite number", common.ErrInvalidAmount, s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: must be greater than zero", common.ErrInvalidAmount)
	}
	return v, nil
}
