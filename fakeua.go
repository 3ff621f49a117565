package fakeua

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/dmitrymomot/fakeua/pkg/cachestore"
	"github.com/dmitrymomot/fakeua/pkg/logger"
	"github.com/dmitrymomot/fakeua/pkg/source"
)

// Version of the library, also used in CLI -version output.
const Version = "1.0.0"

// DefaultTTL is how long a fetched record set stays fresh. The listing page
// changes on the order of weeks, so a day keeps the data current without
// hammering the source.
const DefaultTTL = 24 * time.Hour

// Generator produces randomized user-agent strings from a periodically
// refreshed record set. Create instances with New; the zero value is not
// usable.
//
// A Generator is synchronous: UserAgent blocks until it has a result and
// starts no background work, so it composes safely with any caller-side
// concurrency.
type Generator struct {
	src      *source.Client
	store    cachestore.Store[[]source.Record]
	ttl      time.Duration
	useCache bool
	now      func() time.Time
	rng      *rand.Rand
	log      *slog.Logger
}

// New creates a Generator. Without options it fetches from the public listing
// page and caches records in a JSON file in the platform temp directory for
// DefaultTTL.
func New(opts ...Option) *Generator {
	g := &Generator{
		ttl:      DefaultTTL,
		useCache: true,
		now:      time.Now,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = source.New(source.WithLogger(g.log))
	}
	if g.store == nil {
		g.store = cachestore.NewFileStore[[]source.Record]("")
	}
	return g
}

// UserAgent returns one randomly chosen user-agent string, optionally
// restricted to the given browser (empty means any). Records come from the
// cache when a valid entry exists; otherwise they are fetched, extracted and
// cached before the pick.
//
// Cache failures never fail the call: an unreadable cache falls back to a
// fetch, and a failed save is logged and ignored since the freshly fetched
// records are already in hand. Fetch and parse failures do propagate, because
// fabricating a result would silently corrupt whatever the caller sends it to.
func (g *Generator) UserAgent(ctx context.Context, browser string) (string, error) {
	records, err := g.records(ctx)
	if err != nil {
		return "", err
	}
	return Select(g.rng, records, browser)
}

// Refresh unconditionally fetches the record set and rewrites the cache,
// ignoring any valid entry. Unlike UserAgent, a cache write failure here is
// returned: refreshing the cache is the whole point of the call.
func (g *Generator) Refresh(ctx context.Context) error {
	records, err := g.src.Fetch(ctx)
	if err != nil {
		return err
	}
	return g.store.Save(cachestore.Entry[[]source.Record]{
		Payload:   records,
		FetchedAt: g.now(),
		TTL:       g.ttl,
	})
}

// RemoveCache deletes the persisted cache. Calling it when no cache exists
// is not an error.
func (g *Generator) RemoveCache() error {
	return g.store.Clear()
}

// records resolves the working record set: valid cache entry if allowed,
// fresh fetch otherwise.
func (g *Generator) records(ctx context.Context) ([]source.Record, error) {
	if g.useCache {
		entry, found, err := g.store.Load()
		if err != nil {
			g.log.Warn("cache read failed, falling back to fetch", logger.Error(err))
		}
		if found && entry.ValidAt(g.now()) {
			g.log.Debug("using cached records", slog.Int("count", len(entry.Payload)))
			return entry.Payload, nil
		}
	}

	records, err := g.src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	g.log.Debug("fetched fresh records", slog.Int("count", len(records)))

	if g.useCache {
		entry := cachestore.Entry[[]source.Record]{
			Payload:   records,
			FetchedAt: g.now(),
			TTL:       g.ttl,
		}
		if err := g.store.Save(entry); err != nil {
			g.log.Warn("cache write failed, continuing without persistence", logger.Error(err))
		}
	}

	return records, nil
}

var (
	defaultOnce sync.Once
	defaultGen  *Generator
)

// Default returns the shared package-level Generator, building it on first
// use from environment configuration (falling back to built-in defaults if
// the environment does not parse).
func Default() *Generator {
	defaultOnce.Do(func() {
		cfg, err := LoadConfig()
		if err != nil {
			cfg = Config{CacheTTL: DefaultTTL}
		}
		defaultGen = New(WithConfig(cfg))
	})
	return defaultGen
}

// UserAgent is shorthand for Default().UserAgent.
func UserAgent(ctx context.Context, browser string) (string, error) {
	return Default().UserAgent(ctx, browser)
}

// RemoveCache is shorthand for Default().RemoveCache.
func RemoveCache() error {
	return Default().RemoveCache()
}
