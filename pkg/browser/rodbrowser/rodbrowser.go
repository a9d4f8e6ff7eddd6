// Package rodbrowser provides a browser.Launcher implementation backed by a
// headless Chromium instance driven through go-rod.
package rodbrowser

import (
	"context"
	"fmt"

	"leadhunter/pkg/browser"
	"leadhunter/pkg/serrors"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Options configure the shared browser process.
type Options struct {
	// Headless disables the visible browser window.
	Headless bool
	// UserAgent is applied to every page created from this launcher.
	UserAgent string
}

// Launcher owns one Chromium process. Every scan gets its own incognito
// context from NewContext so concurrent scans never share cookies or storage.
type Launcher struct {
	browser *rod.Browser
	options Options
}

// New launches the browser process and connects to it.
func New(options Options) (*Launcher, error) {
	controlURL, err := launcher.New().
		Headless(options.Headless).
		Set("no-sandbox").
		Set("disable-gpu").
		Set("mute-audio").
		Launch()
	if err != nil {
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("could not connect to browser: %w", err)
	}

	return &Launcher{
		browser: b,
		options: options,
	}, nil
}

// NewContext creates an isolated incognito browsing context with a single page.
func (l *Launcher) NewContext(ctx context.Context) (browser.Pager, error) {
	incognito, err := l.browser.Context(ctx).Incognito()
	if err != nil {
		return nil, fmt.Errorf("could not create incognito context: %w", err)
	}

	page, err := incognito.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("could not create page: %w", err)
	}

	if l.options.UserAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
			UserAgent: l.options.UserAgent,
		}); err != nil {
			_ = page.Close()

			return nil, fmt.Errorf("could not set user agent: %w", err)
		}
	}

	return &pager{page: page}, nil
}

// Close shuts the browser process down.
func (l *Launcher) Close() error {
	if err := l.browser.Close(); err != nil {
		return fmt.Errorf("could not close browser: %w", err)
	}

	return nil
}

// pager is one incognito context with a single reusable page.
type pager struct {
	page *rod.Page
}

// Fetch navigates the context's page to the URL and returns the rendered
// document. Navigation failures and timeouts are reported as
// serrors.ErrTransportUnreachable so callers can treat them as non-fatal.
func (p *pager) Fetch(ctx context.Context, url string) (*browser.Document, error) {
	page := p.page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return nil, serrors.Wrap(serrors.ErrTransportUnreachable, err, "could not navigate to %s", url)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, serrors.Wrap(serrors.ErrTransportUnreachable, err, "page did not finish loading: %s", url)
	}

	html, err := page.HTML()
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransportUnreachable, err, "could not read page HTML: %s", url)
	}

	info, err := page.Info()
	finalURL := url
	if err == nil && info.URL != "" {
		finalURL = info.URL
	}

	return &browser.Document{
		URL:  finalURL,
		HTML: html,
	}, nil
}

// Close releases the incognito context's page.
func (p *pager) Close() error {
	if err := p.page.Close(); err != nil {
		return fmt.Errorf("could not close page: %w", err)
	}

	return nil
}

// Ensure implementations conform to the interfaces at compile time.
var (
	_ browser.Launcher = (*Launcher)(nil)
	_ browser.Pager    = (*pager)(nil)
)
