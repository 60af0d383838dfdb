package rates

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophfx/internal/logging"
	"github.com/dmitrijs2005/gophfx/internal/models"
)

// loggingSource decorates a Source with logging.
type loggingSource struct {
	next   Source
	logger logging.Logger
}

func NewLoggingSource(logger logging.Logger, s Source) Source {
	return &loggingSource{next: s, logger: logger}
}

func (s *loggingSource) FetchRates(ctx context.Context) (table models.RateTable, err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.Error(ctx, "fetch rates failed", "took", time.Since(begin), "err", err)
			return
		}
		s.logger.Info(ctx, "rates fetched",
			"base", table.Base(),
			"count", table.Len(),
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.FetchRates(ctx)
}
