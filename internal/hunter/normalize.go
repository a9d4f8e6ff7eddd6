package hunter

import (
	"strings"

	"leadhunter/pkg/domain"
)

// NormalizeDomain reduces arbitrary user input to a bare lowercase host.
//
// The normalization rules are intentionally strict to keep scans and their
// unique jobs keyed by one canonical form:
//   - Lower-case the whole input
//   - Strip an "http://" or "https://" scheme prefix
//   - Strip a leading "www."
//   - Drop everything from the first "/", "?" or "#" on (path, query, fragment)
//   - Drop an explicit port
//
// It is a pure function and cannot fail: empty or all-noise input yields an
// empty host, and downstream phases then no-op.
func NormalizeDomain(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))

	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "www.")

	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, ':'); i >= 0 {
		s = s[:i]
	}

	return s
}

// NewScanTarget normalizes the raw input and derives the fallback company
// name from the left-most label before the first dot.
func NewScanTarget(raw string) domain.ScanTarget {
	host := NormalizeDomain(raw)

	var fallback string
	if host != "" {
		fallback = strings.SplitN(host, ".", 2)[0]
	}

	return domain.ScanTarget{
		RawDomain:           raw,
		Domain:              host,
		FallbackCompanyName: fallback,
	}
}
