package fakeua

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/dmitrymomot/fakeua/pkg/cachestore"
	"github.com/dmitrymomot/fakeua/pkg/source"
)

// Option configures a Generator.
type Option func(*Generator)

// WithSource replaces the source client, e.g. to point at a different
// listing page or tune timeouts. Nil clients are ignored.
func WithSource(src *source.Client) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithStore replaces the cache store. Nil stores are ignored; use
// WithoutCache to disable caching entirely.
func WithStore(store cachestore.Store[[]source.Record]) Option {
	return func(g *Generator) {
		if store != nil {
			g.store = store
		}
	}
}

// WithTTL sets how long fetched records stay fresh.
// Default is DefaultTTL if not specified.
func WithTTL(ttl time.Duration) Option {
	return func(g *Generator) {
		if ttl > 0 {
			g.ttl = ttl
		}
	}
}

// WithoutCache disables cache reads and writes: every call fetches fresh
// records. RemoveCache still works against the configured store.
func WithoutCache() Option {
	return func(g *Generator) {
		g.useCache = false
	}
}

// WithClock injects the time source used for cache freshness decisions,
// letting tests simulate expiry without waiting. Nil clocks are ignored.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithRand injects the random source used for selection, for reproducible
// draws in tests. Nil sources are ignored (a shared seeded source is used).
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithLogger attaches a logger. Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// WithConfig applies an environment-derived Config as a batch of options.
func WithConfig(cfg Config) Option {
	return func(g *Generator) {
		if cfg.CacheTTL > 0 {
			g.ttl = cfg.CacheTTL
		}
		if g.store == nil || cfg.CachePath != "" {
			g.store = cachestore.NewFileStore[[]source.Record](cfg.CachePath)
		}
		if g.src == nil {
			srcOpts := []source.Option{source.WithLogger(g.log)}
			if cfg.SourceURL != "" {
				srcOpts = append(srcOpts, source.WithURL(cfg.SourceURL))
			}
			if cfg.HTTPTimeout > 0 {
				srcOpts = append(srcOpts, source.WithTimeout(cfg.HTTPTimeout))
			}
			g.src = source.New(srcOpts...)
		}
	}
}
