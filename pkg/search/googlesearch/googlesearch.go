// Package googlesearch provides a search.Engine that scrapes Google result
// pages through the scan's browsing context. Going through a real browser
// keeps the engine usable despite Google's automation countermeasures, at the
// cost of strictly sequential, paced navigations.
package googlesearch

import (
	"context"
	"net/url"
	"strings"

	"leadhunter/pkg/browser"
	"leadhunter/pkg/search"

	"github.com/PuerkitoBio/goquery"
)

// Engine scrapes Google results through a browser.Pager. It is bound to one
// browsing context and therefore to one scan; it is not safe for concurrent
// use.
type Engine struct {
	pager browser.Pager
}

// New creates a Google engine on top of the given browsing context.
func New(pager browser.Pager) *Engine {
	return &Engine{pager: pager}
}

// Name identifies the engine on leads it produced.
func (e *Engine) Name() string { return "google" }

// Search navigates to a Google results page for the query and harvests every
// anchor that carries both a target and a visible title. Link-level filtering
// (profile paths, junk titles) is the orchestrator's concern, not the engine's.
func (e *Engine) Search(ctx context.Context, query string) ([]search.Result, error) {
	searchURL := "https://www.google.com/search?q=" + url.QueryEscape(query) + "&num=100"

	doc, err := e.pager.Fetch(ctx, searchURL)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc.HTML))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	var results []search.Result
	parsed.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		href = resolveRedirect(href)
		if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
			return
		}

		title := strings.TrimSpace(s.Text())
		if title == "" {
			return
		}

		results = append(results, search.Result{URL: href, Title: title})
	})

	return results, nil
}

// resolveRedirect unwraps Google's /url?q=<target> indirection used on
// non-rendered result pages. Direct links pass through untouched.
func resolveRedirect(href string) string {
	if !strings.HasPrefix(href, "/url?") {
		return href
	}

	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("q"); target != "" {
		return target
	}

	return href
}

// Ensure Engine conforms to the search.Engine interface at compile time.
var _ search.Engine = (*Engine)(nil)
