// Package rates fetches exchange-rate snapshots from a remote HTTP API.
package rates

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophfx/internal/common"
	"github.com/dmitrijs2005/gophfx/internal/logging"
	"github.com/dmitrijs2005/gophfx/internal/models"
)

// DefaultURL is the public endpoint serving USD-based rates.
const DefaultURL = "https://api.exchangerate-api.com/v4/latest/USD"

// maxBodySize bounds how much of a response is read.
const maxBodySize = 4 << 20

// Source produces a fresh RateTable on every call.
type Source interface {
	FetchRates(ctx context.Context) (models.RateTable, error)
}

// HTTPSource reads {"base": "...", "rates": {"CODE": number}} from url.
type HTTPSource struct {
	url    string
	client *http.Client
	allow  []string
	logger logging.Logger
	now    func() time.Time
}

// NewHTTPSource returns a source for url. A non-empty allow list restricts the
// returned table to those codes.
func NewHTTPSource(url string, timeout time.Duration, allow []string, logger logging.Logger) *HTTPSource {
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
		allow:  allow,
		logger: logger,
		now:    time.Now,
	}
}

type response struct {
	Base  string      `json:"base"`
	Rates listedRates `json:"rates"`
}

// listedRates decodes a JSON object of code -> number keeping key order.
// A null or absent object leaves present false.
type listedRates struct {
	present bool
	items   []models.Rate
}

func (l *listedRates) UnmarshalJSON(b []byte) error {
	if string(bytes.TrimSpace(b)) == "null" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("rates: expected object, got %v", tok)
	}

	items := make([]models.Rate, 0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		code, ok := tok.(string)
		if !ok {
			return fmt.Errorf("rates: expected key, got %v", tok)
		}
		var value float64
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("rates: %s: %w", code, err)
		}
		items = append(items, models.Rate{Code: code, Value: value})
	}

	l.present = true
	l.items = items
	return nil
}

// FetchRates performs a single GET. Every failure wraps
// common.ErrSourceUnavailable, so an empty table with a nil error always
// means the service really listed no currencies.
func (s *HTTPSource) FetchRates(ctx context.Context) (models.RateTable, error) {
	var zero models.RateTable

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return zero, fmt.Errorf("%w: building http request: %w", common.ErrSourceUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%w: http get: %w", common.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, fmt.Errorf("%w: unexpected status %s", common.ErrSourceUnavailable, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return zero, fmt.Errorf("%w: reading body: %w", common.ErrSourceUnavailable, err)
	}

	var r response
	if err := json.Unmarshal(body, &r); err != nil {
		return zero, fmt.Errorf("%w: decoding json: %w", common.ErrSourceUnavailable, err)
	}
	if !r.Rates.present {
		return zero, fmt.Errorf("%w: response has no rates object", common.ErrSourceUnavailable)
	}

	valid := make([]models.Rate, 0, len(r.Rates.items))
	seen := make(map[string]bool, len(r.Rates.items))
	for _, item := range r.Rates.items {
		code := models.NormalizeCode(item.Code)
		if code == "" || !models.ValidRate(item.Value) {
			s.logger.Warn(ctx, "dropping malformed rate", "currency", item.Code, "rate", item.Value)
			continue
		}
		if seen[code] {
			s.logger.Warn(ctx, "dropping duplicate rate", "currency", item.Code, "rate", item.Value)
			continue
		}
		seen[code] = true
		valid = append(valid, models.Rate{Code: code, Value: item.Value})
	}

	table, err := models.NewListedRateTable(r.Base, valid, s.now())
	if err != nil {
		return zero, fmt.Errorf("%w: %w", common.ErrSourceUnavailable, err)
	}
	return table.Filter(s.allow), nil
}
