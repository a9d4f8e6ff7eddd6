// Package pipeline implements the discovery-and-verification pipeline: crawl
// the target's own site for literal emails, query search engines for
// professional-network profiles, permute discovered names into candidate
// mailboxes, probe them at the protocol level, and score what survives.
//
// Phases execute strictly in order: crawl, primary search, fallback search,
// generic fallback, then verification and scoring. All pipeline state is
// scan-scoped and passed explicitly; nothing is shared between concurrent
// scans except the persistence collaborator behind the emit callback.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"leadhunter/pkg/browser"
	"leadhunter/pkg/domain"
	"leadhunter/pkg/logger"
	"leadhunter/pkg/search"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Options configure one pipeline instance.
type Options struct {
	// PageTimeout bounds a single page fetch during crawling.
	PageTimeout time.Duration
	// MaxContactPages caps internal pages visited beyond the home page.
	MaxContactPages int
	// ProfileFloor triggers fallback-engine escalation when the primary engine
	// produced fewer profile-linked leads.
	ProfileFloor int
	// ProfileCeiling stops all querying once reached.
	ProfileCeiling int
	// QueryInterval paces search-engine navigations.
	QueryInterval time.Duration
	// ShortPermutations additionally generates first@host candidates.
	ShortPermutations bool
	// VerifyShortPermutations runs the full transport probe on short
	// permutations; when false they stop after the MX check.
	VerifyShortPermutations bool
}

// Verifier classifies candidate mailboxes. verifier.Session satisfies it.
//
//go:generate mockgen -package mockpipeline -source=pipeline.go -destination=mock/mockpipeline.go *
type Verifier interface {
	Verify(ctx context.Context, email string) domain.VerificationResult
	VerifyMXOnly(ctx context.Context, email string) domain.VerificationResult
}

// Emit hands one admitted lead to the persistence collaborator. The
// collaborator owns durable dedup; the pipeline only guarantees uniqueness
// within its own scan.
type Emit func(ctx context.Context, lead domain.Lead) error

// Stats summarize one pipeline run.
type Stats struct {
	// SiteReachable reports whether the crawl phase reached the target site.
	SiteReachable bool
	// CompanyName is the company name discovered on the site, when any.
	CompanyName string
	// Candidates is the number of candidate leads discovered across phases.
	Candidates int
	// Verified is the number of mailbox verifications performed.
	Verified int
	// Admitted is the number of leads emitted.
	Admitted int
}

// Pipeline runs scans against one browsing context. It is bound to a single
// scan at a time and is not safe for concurrent use; concurrent scans build
// their own Pipeline on their own browsing context.
type Pipeline struct {
	pager    browser.Pager
	primary  search.Engine
	fallback search.Engine
	verifier Verifier
	limiter  *rate.Limiter
	options  Options
}

// New creates a Pipeline over the given browsing context, engines and
// verifier session.
func New(pager browser.Pager, primary, fallback search.Engine, v Verifier, options Options) *Pipeline {
	interval := options.QueryInterval
	if interval <= 0 {
		interval = time.Second
	}

	return &Pipeline{
		pager:    pager,
		primary:  primary,
		fallback: fallback,
		verifier: v,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		options:  options,
	}
}

// scanState is the scan-scoped mutable state: seen-sets, discovered
// candidates, and the count of profile-linked leads that drives escalation
// and the ceiling. It is created at scan start and discarded at scan end.
type scanState struct {
	target     domain.ScanTarget
	seenEmails map[string]struct{}
	seenLinks  map[string]struct{}
	candidates []domain.CandidateLead
	profiles   int
}

func newScanState(target domain.ScanTarget) *scanState {
	return &scanState{
		target:     target,
		seenEmails: make(map[string]struct{}),
		seenLinks:  make(map[string]struct{}),
	}
}

// markEmail registers an email in the scan's seen-set. It returns false when
// the address was already produced earlier in the scan; the first writer
// wins and later occurrences are silently dropped.
func (s *scanState) markEmail(email string) bool {
	key := strings.ToLower(email)
	if _, ok := s.seenEmails[key]; ok {
		return false
	}
	s.seenEmails[key] = struct{}{}

	return true
}

// markLink registers a profile or page link in the scan's seen-set.
func (s *scanState) markLink(link string) bool {
	if _, ok := s.seenLinks[link]; ok {
		return false
	}
	s.seenLinks[link] = struct{}{}

	return true
}

// addCandidate appends a candidate after claiming its emails in the seen-set.
// Generated emails that collide with earlier candidates are discarded for the
// later profile; a candidate whose every address collided is dropped.
func (s *scanState) addCandidate(cand domain.CandidateLead) bool {
	if cand.SourceEmail != "" && !s.markEmail(cand.SourceEmail) {
		return false
	}

	kept := cand.GeneratedEmails[:0]
	for _, email := range cand.GeneratedEmails {
		if s.markEmail(email) {
			kept = append(kept, email)
		}
	}
	cand.GeneratedEmails = kept

	if cand.SourceEmail == "" && len(cand.GeneratedEmails) == 0 {
		return false
	}

	s.candidates = append(s.candidates, cand)
	if cand.ProfileURL != "" {
		s.profiles++
	}

	return true
}

// Run executes one full scan for the target and streams admitted leads
// through emit. Phase-level failures (unreachable site, blocked query) are
// logged and skipped; the only errors Run returns are context cancellation,
// checked at phase boundaries, and emit failures.
func (p *Pipeline) Run(ctx context.Context, target domain.ScanTarget, emit Emit) (Stats, error) {
	var stats Stats
	if target.Domain == "" {
		return stats, nil
	}

	ctx = logger.WithFields(ctx, zap.String("domain", target.Domain))
	st := newScanState(target)

	stats.SiteReachable = p.crawl(ctx, st)
	stats.CompanyName = st.target.DiscoveredCompanyName
	if err := ctx.Err(); err != nil {
		return stats, fmt.Errorf("scan canceled after crawl phase: %w", err)
	}

	p.searchPhase(ctx, st)
	if err := ctx.Err(); err != nil {
		return stats, fmt.Errorf("scan canceled after search phase: %w", err)
	}

	p.genericPhase(st)

	stats.Candidates = len(st.candidates)
	logger.Info(ctx, "discovery phases finished",
		zap.Int("candidates", stats.Candidates),
		zap.Int("profileLinked", st.profiles))

	return p.verifyAndEmit(ctx, st, emit, stats)
}

// genericPhase adds departmental mailbox guesses as the last discovery phase.
// They are admitted later only when verification does not reject them.
func (p *Pipeline) genericPhase(st *scanState) {
	for _, prefix := range genericPrefixes {
		st.addCandidate(domain.CandidateLead{
			DisplayName:     capitalize(prefix),
			FirstName:       capitalize(prefix),
			RoleTitle:       departmentRole,
			GeneratedEmails: []string{prefix + "@" + st.target.Domain},
			Provenance:      domain.ProvenanceGeneric,
		})
	}
}
