// Package browser defines the page-fetch capability used by the discovery
// pipeline. Implementations render a URL and hand back the resulting document
// so the automation backend stays swappable and mockable in tests.
package browser

import (
	"context"
)

// Document is the rendered outcome of one navigation.
type Document struct {
	// URL is the final URL after redirects.
	URL string
	// HTML is the rendered markup of the page.
	HTML string
}

// Pager is one isolated browsing context. A scan owns its Pager exclusively
// for the scan's full duration and must release it with Close on every exit
// path.
//
//go:generate mockgen -package mockbrowser -source=interface.go -destination=mock/mockbrowser.go *
type Pager interface {
	// Fetch navigates to the URL, waits for the page to load, and returns the
	// rendered document. The context bounds the whole navigation.
	Fetch(ctx context.Context, url string) (*Document, error)
	// Close releases the browsing context.
	Close() error
}

// Launcher owns the shared browser process and hands out isolated browsing
// contexts.
type Launcher interface {
	// NewContext creates a fresh isolated browsing context.
	NewContext(ctx context.Context) (Pager, error)
	// Close shuts the browser down. Outstanding Pagers become unusable.
	Close() error
}
