// Package duckduckgo provides a search.Engine backed by DuckDuckGo's
// JavaScript-free HTML endpoint. It needs no browser, which makes it a cheap
// fallback when the primary engine comes up short.
package duckduckgo

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"leadhunter/pkg/search"
	"leadhunter/pkg/serrors"

	"github.com/PuerkitoBio/goquery"
)

const (
	endpoint       = "https://html.duckduckgo.com/html/"
	requestTimeout = 10 * time.Second
)

// Engine queries the DuckDuckGo HTML endpoint over plain HTTP.
// It is safe for concurrent use.
type Engine struct {
	httpClient *http.Client
	userAgent  string
}

// New creates a DuckDuckGo engine. A nil httpClient gets a default one with a
// bounded timeout.
func New(httpClient *http.Client, userAgent string) *Engine {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}

	return &Engine{
		httpClient: httpClient,
		userAgent:  userAgent,
	}
}

// Name identifies the engine on leads it produced.
func (e *Engine) Name() string { return "duckduckgo" }

// Search fetches one results page and extracts the result anchors. DuckDuckGo
// wraps every target in a redirect URL whose "uddg" parameter carries the real
// link.
func (e *Engine) Search(ctx context.Context, query string) ([]search.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?q="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransportUnreachable, err, "could not create request")
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransportUnreachable, err, "could not query duckduckgo")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.With(serrors.ErrTransportUnreachable, "duckduckgo returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransportUnreachable, err, "could not parse results page")
	}

	var results []search.Result
	doc.Find(".result__a").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}

		target, err := decodeRedirect(href)
		if err != nil || target == "" {
			return
		}

		title := strings.TrimSpace(s.Text())
		if title == "" {
			return
		}

		results = append(results, search.Result{URL: target, Title: title})
	})

	return results, nil
}

// decodeRedirect extracts the real target from a DuckDuckGo redirect URL.
func decodeRedirect(href string) (string, error) {
	u, err := url.Parse(href)
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	target := u.Query().Get("uddg")
	if target == "" {
		// some result variants link directly
		if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
			return href, nil
		}

		return "", nil
	}

	return url.QueryUnescape(target) //nolint: wrapcheck
}

// Ensure Engine conforms to the search.Engine interface at compile time.
var _ search.Engine = (*Engine)(nil)
