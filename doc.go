// Package fakeua generates randomized, real-world browser user-agent strings.
//
// Strings are scraped from a public listing page, weighted by browser usage
// share, cached on disk with a TTL, and picked at random on every call. The
// typical consumer is a crawler or API client that wants each request to look
// like an ordinary browser without hardcoding a stale string.
//
// Basic Usage:
//
//	ua, err := fakeua.UserAgent(ctx, "")
//	if err != nil {
//		// network or parse failure; no fabricated fallback is returned
//	}
//	req.Header.Set("User-Agent", ua)
//
// Restrict the pick to one browser (aliases like "ie", "ff" or "google" are
// understood):
//
//	ua, err := fakeua.UserAgent(ctx, "chrome")
//
// Advanced Usage with Options:
//
//	gen := fakeua.New(
//		fakeua.WithTTL(72*time.Hour),
//		fakeua.WithStore(cachestore.NewMemoryStore[[]source.Record]()),
//		fakeua.WithLogger(log),
//	)
//	ua, err := gen.UserAgent(ctx, "firefox")
//
// Behavior guarantees:
//
//   - Every call is an independent random draw; results are never memoized.
//   - UserAgent is fully synchronous: it blocks until it has a value and
//     starts no background goroutines, so it is safe to call from inside any
//     caller-managed concurrency.
//   - Cache trouble is never fatal. An unreadable cache file falls back to a
//     fresh fetch; a failed cache write is logged and the fetched value is
//     still returned.
//   - Fetch and parse failures propagate as errors wrapping the sentinels in
//     pkg/source, since inventing a user agent would corrupt downstream
//     behavior silently.
//
// Configuration can also come from the environment (FAKEUA_CACHE_FILE,
// FAKEUA_CACHE_TTL, FAKEUA_HTTP_TIMEOUT, FAKEUA_SOURCE_URL,
// FAKEUA_LOG_LEVEL); see Config. All variables are optional.
package fakeua
