// Package search defines the search-engine abstraction the orchestrator
// queries for professional-network profiles.
package search

import "context"

// Result is one entry on a search results page.
type Result struct {
	// URL is the result link target.
	URL string
	// Title is the visible result title.
	Title string
}

// Engine issues a single query against one search engine and returns its
// result links in page order.
//
//go:generate mockgen -package mocksearch -source=interface.go -destination=mock/mocksearch.go *
type Engine interface {
	// Name identifies the engine, recorded on leads it produced.
	Name() string
	// Search runs one query. Transport failures are reported as
	// serrors.ErrTransportUnreachable and are non-fatal to the caller.
	Search(ctx context.Context, query string) ([]Result, error)
}
