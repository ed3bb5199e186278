// Package directory serves filtered species directory views. It runs the
// taxonomy pipeline and memoises views per identical input.
package directory

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/feederwatch/dashboard/internal/errors"
	"github.com/feederwatch/dashboard/internal/logger"
	"github.com/feederwatch/dashboard/internal/taxonomy"
)

// DefaultCacheTTL is how long a computed view is reused.
const DefaultCacheTTL = 5 * time.Minute

// Options selects which part of the directory a view shows.
type Options struct {
	Status taxonomy.StatusFilter `json:"status"`
	Search string                `json:"search"`
}

// View is a filtered, count-annotated directory ready for rendering.
// Views returned by Query may be shared between callers and must not be modified.
type View struct {
	Roots        []*taxonomy.Node  `json:"roots"`
	Info         taxonomy.TreeInfo `json:"info"`
	TotalNodes   int               `json:"totalNodes"`
	VisibleNodes int               `json:"visibleNodes"`
}

// MetricsRecorder receives query outcomes.
type MetricsRecorder interface {
	RecordDirectoryQuery(status string, duration float64)
	RecordCacheHit()
	RecordCacheMiss()
	UpdateTreeNodes(nodes int)
}

// Config holds service settings.
type Config struct {
	// CacheTTL is the lifetime of a memoised view. Zero or negative disables caching.
	CacheTTL time.Duration
}

// Service answers directory queries.
type Service struct {
	cache   *cache.Cache
	ttl     time.Duration
	group   singleflight.Group
	metrics MetricsRecorder
	log     logger.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithMetrics attaches a metrics recorder.
func WithMetrics(m MetricsRecorder) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLogger overrides the package logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService creates a Service. The cache runs without a janitor goroutine;
// expired entries are purged on misses.
func NewService(cfg Config, opts ...Option) *Service {
	s := &Service{
		ttl: cfg.CacheTTL,
		log: GetLogger(),
	}
	if cfg.CacheTTL > 0 {
		s.cache = cache.New(cfg.CacheTTL, 0)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetLogger returns the directory package logger.
func GetLogger() logger.Logger {
	return logger.Global().Module("directory")
}

// Query builds the view of species selected by opts.
func (s *Service) Query(ctx context.Context, species []taxonomy.Species, opts Options) (*View, error) {
	start := time.Now()
	view, err := s.query(ctx, species, opts)

	if s.metrics != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		s.metrics.RecordDirectoryQuery(status, time.Since(start).Seconds())
	}
	return view, err
}

func (s *Service) query(ctx context.Context, species []taxonomy.Species, opts Options) (*View, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryCancellation).
			Build()
	}

	status, err := taxonomy.ParseStatusFilter(string(opts.Status))
	if err != nil {
		return nil, err
	}
	opts.Status = status

	if s.cache == nil {
		return s.build(species, opts)
	}

	key, err := cacheKey(species, opts)
	if err != nil {
		return nil, err
	}

	if cached, found := s.cache.Get(key); found {
		if view, ok := cached.(*View); ok {
			if s.metrics != nil {
				s.metrics.RecordCacheHit()
			}
			s.log.Debug("Directory view cache hit", logger.String("cache_key", key))
			return view, nil
		}
	}

	if s.metrics != nil {
		s.metrics.RecordCacheMiss()
	}
	s.cache.DeleteExpired()

	ch := s.group.DoChan(key, func() (any, error) {
		view, err := s.build(species, opts)
		if err != nil {
			return nil, err
		}
		s.cache.Set(key, view, cache.DefaultExpiration)
		return view, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*View), nil
	case <-ctx.Done():
		return nil, errors.New(ctx.Err()).
			Category(errors.CategoryCancellation).
			Context("cache_key", key).
			Build()
	}
}

// build runs the pipeline: tree, cumulative counts, status filter, search
// filter, tree info.
func (s *Service) build(species []taxonomy.Species, opts Options) (*View, error) {
	roots, err := taxonomy.BuildTree(species)
	if err != nil {
		return nil, err
	}
	counted := taxonomy.ComputeCumulativeCounts(roots)
	total := taxonomy.CountNodes(counted)

	filtered := taxonomy.FilterBySearch(taxonomy.FilterByStatus(counted, opts.Status), opts.Search)
	view := &View{
		Roots:        filtered,
		Info:         taxonomy.CollectTreeInfo(filtered, opts.Search),
		TotalNodes:   total,
		VisibleNodes: taxonomy.CountNodes(filtered),
	}

	if s.metrics != nil {
		s.metrics.UpdateTreeNodes(total)
	}
	s.log.Debug("Directory view built",
		logger.Int("total_nodes", view.TotalNodes),
		logger.Int("visible_nodes", view.VisibleNodes),
		logger.String("status", string(opts.Status)),
		logger.Bool("searching", opts.Search != ""))
	return view, nil
}

// Purge drops every memoised view.
func (s *Service) Purge() {
	if s.cache != nil {
		s.cache.Flush()
	}
}

// CachedViews returns the number of memoised views, expired ones included.
func (s *Service) CachedViews() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.ItemCount()
}

type cacheInput struct {
	Species []taxonomy.Species `json:"species"`
	Options Options            `json:"options"`
}

// cacheKey digests the full query input. Species order is part of the key
// because it determines sibling order in the view.
func cacheKey(species []taxonomy.Species, opts Options) (string, error) {
	data, err := json.Marshal(cacheInput{Species: species, Options: opts})
	if err != nil {
		return "", errors.New(err).
			Category(errors.CategoryProcessing).
			Context("operation", "cache_key").
			Build()
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}
