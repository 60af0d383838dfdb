// Package models defines the GophFX data model: rate tables, conversion
// records and accounts.
package models

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"
)

var ErrInvalidRate = errors.New("rate must be a positive finite number")

// RateTable is an immutable snapshot of currency rates relative to Base.
// A refresh builds a new table; existing tables are never modified.
//
// Besides the sorted view of Codes, a table remembers the order its
// currencies were listed in by the source (see Listed).
type RateTable struct {
	base      string
	rates     map[string]float64
	order     []string
	fetchedAt time.Time
}

// Rate is one currency entry as listed by a source.
type Rate struct {
	Code  string
	Value float64
}

// NewRateTable validates and copies rates into a new table. Codes are
// trimmed and upper-cased. Empty codes, codes that collide after
// normalization and rates that are not positive finite numbers are
// rejected. The listed order is ascending by code.
func NewRateTable(base string, rates map[string]float64, fetchedAt time.Time) (RateTable, error) {
	listed := make([]Rate, 0, len(rates))
	for code, rate := range rates {
		listed = append(listed, Rate{Code: code, Value: rate})
	}
	slices.SortFunc(listed, func(a, b Rate) int {
		return strings.Compare(NormalizeCode(a.Code), NormalizeCode(b.Code))
	})
	return NewListedRateTable(base, listed, fetchedAt)
}

// NewListedRateTable is NewRateTable for sources that list currencies in a
// meaningful order, which Listed preserves.
func NewListedRateTable(base string, rates []Rate, fetchedAt time.Time) (RateTable, error) {
	copied := make(map[string]float64, len(rates))
	order := make([]string, 0, len(rates))
	for _, r := range rates {
		c := NormalizeCode(r.Code)
		if c == "" {
			return RateTable{}, fmt.Errorf("empty currency code")
		}
		if !ValidRate(r.Value) {
			return RateTable{}, fmt.Errorf("%w: %s=%v", ErrInvalidRate, c, r.Value)
		}
		if _, dup := copied[c]; dup {
			return RateTable{}, fmt.Errorf("duplicate currency code %s", c)
		}
		copied[c] = r.Value
		order = append(order, c)
	}
	return RateTable{base: NormalizeCode(base), rates: copied, order: order, fetchedAt: fetchedAt}, nil
}

// NormalizeCode trims and upper-cases a currency code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidRate reports whether r can be used as a conversion factor.
func ValidRate(r float64) bool {
	return r > 0 && !math.IsInf(r, 0) && !math.IsNaN(r)
}

func (t RateTable) Base() string { return t.base }

func (t RateTable) FetchedAt() time.Time { return t.fetchedAt }

func (t RateTable) Len() int { return len(t.rates) }

func (t RateTable) Rate(code string) (float64, bool) {
	r, ok := t.rates[NormalizeCode(code)]
	return r, ok
}

func (t RateTable) Has(code string) bool {
	_, ok := t.Rate(code)
	return ok
}

// Codes returns all currency codes in ascending order.
func (t RateTable) Codes() []string {
	codes := make([]string, 0, len(t.rates))
	for c := range t.rates {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}

// Listed returns the codes in the order the source listed them.
func (t RateTable) Listed() []string {
	return slices.Clone(t.order)
}

// Search returns the sorted codes containing fragment, case-insensitively.
// An empty fragment matches everything.
func (t RateTable) Search(fragment string) []string {
	f := NormalizeCode(fragment)
	var found []string
	for _, c := range t.Codes() {
		if strings.Contains(c, f) {
			found = append(found, c)
		}
	}
	return found
}

// Filter returns a new table holding only the allowed codes. An empty
// allow-list returns t unchanged.
func (t RateTable) Filter(allow []string) RateTable {
	if len(allow) == 0 {
		return t
	}
	keep := make(map[string]bool, len(allow))
	for _, code := range allow {
		keep[NormalizeCode(code)] = true
	}

	filtered := make(map[string]float64, len(keep))
	order := make([]string, 0, len(keep))
	for _, c := range t.order {
		if keep[c] {
			filtered[c] = t.rates[c]
			order = append(order, c)
		}
	}
	return RateTable{base: t.base, rates: filtered, order: order, fetchedAt: t.fetchedAt}
}
