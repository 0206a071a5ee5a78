package dashboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/de-tools/sales-pulse/pkg/models/domain"
	"github.com/de-tools/sales-pulse/pkg/models/store"
	"github.com/de-tools/sales-pulse/pkg/services/rank"
	"github.com/rs/zerolog"
)

const (
	defaultTopProducts = 10
	defaultTopChannels = 10

	dateLayout = "2006-01-02"
)

type Fetcher interface {
	RunQueries(ctx context.Context, req store.QueryRequest) (*store.QueryResponse, error)
}

type Option func(*Service)

func WithTopProducts(n int) Option { return func(s *Service) { s.topProducts = n } }
func WithTopChannels(n int) Option { return func(s *Service) { s.topChannels = n } }

// Service runs fetch cycles against the analytics endpoint and holds the
// latest complete snapshot. Each cycle carries a generation token: only the
// most recently issued cycle may publish its result, and issuing a new one
// cancels the previous in-flight request.
type Service struct {
	fetcher     Fetcher
	topProducts int
	topChannels int

	mu       sync.Mutex
	gen      uint64
	cancel   context.CancelFunc
	snapshot *domain.Dashboard
}

func NewService(fetcher Fetcher, opts ...Option) *Service {
	s := &Service{
		fetcher:     fetcher,
		topProducts: defaultTopProducts,
		topChannels: defaultTopChannels,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh runs one fetch cycle for the given range. On any failure the
// prior snapshot is cleared rather than left on display. A cycle that has
// been superseded by a newer Refresh publishes nothing and reports the
// context error.
func (s *Service) Refresh(ctx context.Context, r domain.DateRange) (*domain.Dashboard, error) {
	logger := zerolog.Ctx(ctx)

	ctx, gen := s.begin(ctx)

	resp, err := s.fetcher.RunQueries(ctx, store.QueryRequest{
		StartDate: r.Start.Format(dateLayout),
		EndDate:   r.End.Format(dateLayout),
		Queries:   Queries(),
	})
	if err != nil {
		s.fail(gen)
		return nil, fmt.Errorf("analytics fetch failed: %w", err)
	}

	d := &domain.Dashboard{Range: r, Queries: resp.Queries, Generation: gen}
	if err := correlate(d, resp.Data); err != nil {
		s.fail(gen)
		return nil, err
	}
	summarize(d, s.topProducts, s.topChannels)

	if !s.publish(d) {
		logger.Debug().Uint64("generation", gen).Msg("dropping superseded fetch cycle")
		return nil, context.Canceled
	}

	logger.Info().
		Uint64("generation", gen).
		Int("periods", len(d.Periods)).
		Int("products", len(d.Products)).
		Int("channels", len(d.Channels)).
		Msg("dashboard refreshed")

	return d, nil
}

// Snapshot returns the latest published dashboard, or ErrNoData when no
// cycle has completed since startup or the last failure.
func (s *Service) Snapshot() (*domain.Dashboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return nil, ErrNoData
	}
	return s.snapshot, nil
}

// TopProducts re-ranks the canonical product sequence of the latest
// snapshot. No derived fields are recomputed, only ordering and truncation.
func (s *Service) TopProducts(n int) ([]domain.ProductSales, error) {
	d, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return rank.TopN(rank.SortByDesc(d.Products, productItemsSold), n), nil
}

func (s *Service) TopChannels(n int) ([]domain.ChannelPerformance, error) {
	d, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return rank.TopN(rank.SortByDesc(d.Channels, channelRevenue), n), nil
}

// begin issues the next generation and cancels the request context of the
// cycle it supersedes.
func (s *Service) begin(ctx context.Context) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.gen++
	return ctx, s.gen
}

// publish installs d as the current snapshot if its generation is still the
// latest one issued.
func (s *Service) publish(d *domain.Dashboard) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.Generation != s.gen {
		return false
	}
	s.snapshot = d
	return true
}

// fail clears the snapshot so a failed cycle never leaves stale data on
// display. A superseded cycle's failure does not clear the newer cycle's
// result.
func (s *Service) fail(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.gen {
		s.snapshot = nil
	}
}
