package games

import (
	"context"
	"fmt"

	"eshop-catalog/core/catalog"
	"eshop-catalog/core/eshop"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Service owns the catalog lifecycle: the initial load and listing queries.
type Service struct {
	provider eshop.Provider
	store    *catalog.Store
	logger   *zap.Logger
	cfg      eshop.Config

	// summaries collapses concurrent status requests into one catalog walk.
	summaries singleflight.Group
}

// NewService creates a new games service.
func NewService(provider eshop.Provider, store *catalog.Store, logger *zap.Logger, cfg eshop.Config) *Service {
	return &Service{
		provider: provider,
		store:    store,
		logger:   logger,
		cfg:      cfg,
	}
}

// Store returns the catalog store the service populates.
func (s *Service) Store() *catalog.Store {
	return s.store
}

// Init loads both regional catalogs, merges them and attaches prices for
// every configured country. The store is marked ready when Init returns,
// with the error if any.
func (s *Service) Init(ctx context.Context) (err error) {
	defer func() { s.store.MarkReady(err) }()

	var americas, europe []eshop.RawGame
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		games, err := s.provider.FetchGames(gctx, eshop.RegionAmericas)
		if err != nil {
			return fmt.Errorf("failed to fetch americas catalog: %w", err)
		}
		americas = games
		return nil
	})
	g.Go(func() error {
		games, err := s.provider.FetchGames(gctx, eshop.RegionEurope)
		if err != nil {
			return fmt.Errorf("failed to fetch europe catalog: %w", err)
		}
		europe = games
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	stats := Merge(s.store, americas, europe, s.logger)
	s.logger.Info("Catalog merged",
		zap.Int("americas", len(americas)),
		zap.Int("europe", len(europe)),
		zap.Int("merged", stats.Merged),
		zap.Int("skipped", stats.Skipped),
		zap.Int("total", s.store.Len()))

	if err := s.enrich(ctx); err != nil {
		return err
	}

	summary := s.store.Summarize()
	s.logger.Info("Catalog loaded",
		zap.Int("total", summary.TotalGames),
		zap.Int("both_regions", summary.BothRegions),
		zap.Any("priced", summary.PricedByCountry))
	return nil
}

// enrich runs one price pass per configured (region, country) pair.
func (s *Service) enrich(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, region := range eshop.Regions {
		for _, country := range s.cfg.Countries(region) {
			g.Go(func() error {
				stats, err := EnrichPrices(gctx, s.store, s.provider, region, country)
				if err != nil {
					return err
				}
				if stats.Unmatched > 0 {
					s.logger.Debug("Dropped unmatched prices",
						zap.String("region", region.String()),
						zap.String("country", country),
						zap.Int("unmatched", stats.Unmatched))
				}
				s.logger.Info("Prices attached",
					zap.String("region", region.String()),
					zap.String("country", country),
					zap.Int("requested", stats.Requested),
					zap.Int("priced", stats.Priced))
				return nil
			})
		}
	}
	return g.Wait()
}

// List answers a listing query against the current catalog. It serves
// whatever state the catalog is in, including an empty one.
func (s *Service) List(q Query) Page {
	return Run(s.store.Snapshot(), q)
}

// Status is the readiness view of the catalog.
type Status struct {
	Ready   bool            `json:"ready"`
	Error   string          `json:"error,omitempty"`
	Summary catalog.Summary `json:"summary"`
}

// Status reports whether the initial load finished and how it went.
func (s *Service) Status() Status {
	summary, _, _ := s.summaries.Do("summary", func() (any, error) {
		return s.store.Summarize(), nil
	})
	st := Status{
		Ready:   s.store.IsReady(),
		Summary: summary.(catalog.Summary),
	}
	if err := s.store.Err(); err != nil {
		st.Error = err.Error()
	}
	return st
}
