package pagination

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var pagesFetchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ptcg_pages_fetched_total",
	Help: "Total pages fetched by the paginator by resource",
}, []string{"resource"})

// Config holds paginator configuration.
type Config struct {
	// Resource labels logs and metrics, e.g. "cards".
	Resource string

	// PageSize defaults to MaxPageSize.
	PageSize int

	// Logger defaults to the global zerolog logger.
	Logger *zerolog.Logger
}

// Paginator fetches every page of one resource.
type Paginator[T any] struct {
	fetcher PageFetcher[T]
	policy  Policy
	config  Config
	logger  zerolog.Logger
}

// New creates a paginator.
func New[T any](fetcher PageFetcher[T], policy Policy, config Config) *Paginator[T] {
	if config.PageSize <= 0 {
		config.PageSize = MaxPageSize
	}

	logger := log.Logger
	if config.Logger != nil {
		logger = *config.Logger
	}

	return &Paginator[T]{
		fetcher: fetcher,
		policy:  policy,
		config:  config,
		logger:  logger.With().Str("resource", config.Resource).Logger(),
	}
}

// FetchAll fetches pages until the policy says stop and returns all items in
// page order. On error nothing but the error is returned.
func (p *Paginator[T]) FetchAll(ctx context.Context) ([]T, error) {
	start := time.Now()
	cursor := NewCursor(p.config.PageSize)
	var items []T

	for {
		page, err := p.fetcher.FetchPage(ctx, cursor.Page)
		if err != nil {
			p.logger.Debug().
				Err(err).
				Int("page", cursor.Page).
				Msg("Page fetch failed, discarding accumulated pages")
			return nil, err
		}
		pagesFetchedTotal.WithLabelValues(p.config.Resource).Inc()

		items = append(items, page.Items...)
		cursor.Observe(page.TotalCount)

		p.logger.Debug().
			Int("page", cursor.Page).
			Int("page_items", len(page.Items)).
			Int("total_pages", cursor.TotalPages).
			Int("items", len(items)).
			Msg("Fetched page")

		if cursor.Done(len(page.Items), p.policy) {
			break
		}
		cursor.Advance()
	}

	p.logger.Info().
		Int("pages", cursor.Page).
		Int("items", len(items)).
		Str("policy", p.policy.String()).
		Dur("duration", time.Since(start)).
		Msg("Fetch complete")

	if items == nil {
		items = []T{}
	}
	return items, nil
}
