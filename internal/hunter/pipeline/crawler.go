package pipeline

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"leadhunter/pkg/browser"
	"leadhunter/pkg/domain"
	"leadhunter/pkg/logger"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// crawl fetches the target's home page and up to MaxContactPages internal
// contact-like pages, harvesting literal target-domain emails along the way.
// The home page title also seeds the discovered company name. Returns whether
// the site was reachable at all; an unreachable site is not fatal, later
// phases still run.
func (p *Pipeline) crawl(ctx context.Context, st *scanState) bool {
	doc := p.fetchSite(ctx, st.target.Domain)
	if doc == nil {
		logger.Warn(ctx, "target site unreachable, skipping crawl phase")

		return false
	}

	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc.HTML))
	if err != nil {
		logger.Warn(ctx, "cannot parse home page", zap.Error(err))

		return true
	}

	// guesses of two runes or fewer are too ambiguous to adopt
	if name := GuessCompanyName(parsed.Find("title").First().Text()); len([]rune(name)) > 2 {
		st.target.DiscoveredCompanyName = name
	}

	p.harvestEmails(ctx, st, doc.HTML, domain.ProvenanceSiteHome)

	visited := 0
	for _, link := range contactLinks(parsed, doc.URL, st.target.Domain) {
		if visited >= p.options.MaxContactPages {
			break
		}
		if !st.markLink(link) {
			continue
		}

		page, err := p.fetchPage(ctx, link)
		if err != nil {
			logger.Debug(ctx, "contact page fetch failed", zap.String("url", link), zap.Error(err))

			continue
		}
		visited++
		p.harvestEmails(ctx, st, page.HTML, domain.ProvenanceSiteInternal)
	}

	return true
}

// fetchSite loads the bare domain, preferring HTTPS and retrying once over
// plain HTTP.
func (p *Pipeline) fetchSite(ctx context.Context, host string) *browser.Document {
	for _, scheme := range []string{"https://", "http://"} {
		doc, err := p.fetchPage(ctx, scheme+host)
		if err == nil {
			return doc
		}
		logger.Debug(ctx, "site fetch failed", zap.String("url", scheme+host), zap.Error(err))
	}

	return nil
}

func (p *Pipeline) fetchPage(ctx context.Context, pageURL string) (*browser.Document, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, p.options.PageTimeout)
	defer cancel()

	return p.pager.Fetch(fetchCtx, pageURL)
}

// harvestEmails extracts target-domain emails from raw page HTML and records
// them as site-provenance candidates. The display name is reconstructed from
// the local part; addresses on foreign domains, asset paths caught by the
// regex, and transactional mailboxes are discarded.
func (p *Pipeline) harvestEmails(ctx context.Context, st *scanState, html string, prov domain.Provenance) {
	for _, match := range emailPattern.FindAllString(html, -1) {
		email := strings.ToLower(match)
		if !strings.Contains(emailHost(email), st.target.Domain) {
			continue
		}
		if hasAssetSuffix(email) || containsAny(email, emailJunkTerms) {
			continue
		}

		display := NameFromLocalPart(email)
		first, last := SplitName(display)
		added := st.addCandidate(domain.CandidateLead{
			DisplayName: display,
			FirstName:   first,
			LastName:    last,
			RoleTitle:   GenericRole,
			SourceEmail: email,
			Provenance:  prov,
		})
		if added {
			logger.Debug(ctx, "email found on site", zap.String("email", email))
		}
	}
}

func emailHost(email string) string {
	if at := strings.LastIndex(email, "@"); at >= 0 {
		return email[at+1:]
	}

	return ""
}

// sameDomain reports whether linkHost is the target host or a subdomain of
// it. The dot boundary keeps foreign hosts that merely embed the target
// ("notacme.com.br" vs "acme.com.br") from passing.
func sameDomain(linkHost, host string) bool {
	linkHost = strings.ToLower(linkHost)

	return linkHost == host || strings.HasSuffix(linkHost, "."+host)
}

// contactLinks collects same-domain anchors whose URL suggests a contact,
// about or team page. Relative hrefs resolve against the final page URL so
// redirected sites still produce absolute links.
func contactLinks(parsed *goquery.Document, pageURL, host string) []string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil
	}

	var links []string
	seen := make(map[string]struct{})
	parsed.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}

		resolved, err := base.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return
		}
		if !sameDomain(resolved.Hostname(), host) {
			return
		}

		full := resolved.String()
		lowered := strings.ToLower(full)
		if !containsAny(lowered, contactLinkKeywords) || hasAssetSuffix(lowered) {
			return
		}
		if _, ok := seen[full]; ok {
			return
		}
		seen[full] = struct{}{}
		links = append(links, full)
	})

	return links
}
