// Package source retrieves browser user-agent records from a public listing
// page and turns them into weighted records ready for random selection.
//
// # Architecture
//
// Fetching and extraction are deliberately decoupled:
//
//   - Client (source.go) owns the HTTP concerns: a pooled http.Client, a
//     per-attempt timeout, and a small bounded retry loop that re-attempts
//     transport failures and 5xx responses but gives up immediately on 4xx.
//   - Extract (extract.go) is a pure function from an HTML document to a
//     record slice, driven by structural queries over the parsed node tree
//     (github.com/PuerkitoBio/goquery). It never touches the network, so it
//     is tested entirely against fixture documents.
//
// Client.Fetch composes the two: one GET, one extraction.
//
// # Weighting
//
// Each browser section's usage share - inline in the heading when the page
// provides it, from a built-in share table otherwise - is divided evenly
// among the section's agent strings. Summed per browser, record weights
// therefore reproduce the browser's share, which keeps the downstream
// weighted pick faithful to real-world usage regardless of how many strings
// a section lists.
//
// # Error Handling
//
// Sentinel errors wrap the underlying cause and can be tested with errors.Is:
//
//   - ErrRequestFailed     - network-level failure or exhausted retries
//   - ErrUnexpectedStatus  - non-retryable HTTP response (4xx)
//   - ErrMalformedDocument - page structure changed or yielded no records
//
// A structure failure is surfaced, never swallowed: an empty result would
// silently hide that the upstream data source went stale.
package source
