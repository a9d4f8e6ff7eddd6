package pipeline

import (
	"context"
	"fmt"
	"strings"

	"leadhunter/pkg/domain"
	"leadhunter/pkg/logger"
	"leadhunter/pkg/metrics"
	"leadhunter/pkg/search"

	"go.uber.org/zap"
)

// searchPhase runs the escalating query ladder against the primary engine,
// then escalates to the fallback engine when profile-linked results stayed
// below the floor. Every query is individually non-fatal; the ceiling stops
// all querying mid-ladder.
func (p *Pipeline) searchPhase(ctx context.Context, st *scanState) {
	p.runQueries(ctx, st, p.primary, primaryQueries(st.target))

	if st.profiles >= p.options.ProfileFloor || p.fallback == nil {
		return
	}

	logger.Info(ctx, "escalating to fallback engine",
		zap.Int("profileLinked", st.profiles),
		zap.Int("floor", p.options.ProfileFloor))
	p.runQueries(ctx, st, p.fallback, fallbackQueries(st.target))
}

// primaryQueries is the ordered ladder, narrowest first: profile pages
// mentioning both the company name and the domain, then the name alone,
// then role keywords, then the bare domain.
func primaryQueries(target domain.ScanTarget) []string {
	company := target.CompanyName()

	return []string{
		fmt.Sprintf(`site:%s "%s" "%s"`, profilePathMarker, company, target.Domain),
		fmt.Sprintf(`site:%s "%s"`, profilePathMarker, company),
		fmt.Sprintf(`"%s" diretor OR gerente OR fundador OR CEO linkedin -intitle:"vagas" -intitle:"empregos"`, company),
		fmt.Sprintf(`site:%s %s`, profilePathMarker, target.Domain),
	}
}

// fallbackQueries drop the exact-phrase quoting so a stricter engine still
// returns something for companies with uncommon punctuation in their name.
func fallbackQueries(target domain.ScanTarget) []string {
	company := target.CompanyName()

	return []string{
		fmt.Sprintf(`site:%s %s`, profilePathMarker, company),
		fmt.Sprintf(`%s %s linkedin`, company, target.Domain),
	}
}

func (p *Pipeline) runQueries(ctx context.Context, st *scanState, engine search.Engine, queries []string) {
	for _, query := range queries {
		if st.profiles >= p.options.ProfileCeiling {
			logger.Info(ctx, "profile ceiling reached, stopping queries",
				zap.Int("ceiling", p.options.ProfileCeiling))

			return
		}
		if err := p.limiter.Wait(ctx); err != nil {
			return
		}

		results, err := engine.Search(ctx, query)
		if err != nil {
			metrics.SearchQueries.WithLabelValues(engine.Name(), "error").Inc()
			logger.Warn(ctx, "search query failed",
				zap.String("engine", engine.Name()),
				zap.String("query", query),
				zap.Error(err))

			continue
		}
		metrics.SearchQueries.WithLabelValues(engine.Name(), "ok").Inc()

		p.collectResults(ctx, st, engine.Name(), results)
	}
}

// collectResults turns profile-page hits into candidates: junk paths and
// listing titles are filtered out, titles are parsed into name and role, and
// names permute into candidate mailboxes on the target domain.
func (p *Pipeline) collectResults(ctx context.Context, st *scanState, engineName string, results []search.Result) {
	for _, result := range results {
		if st.profiles >= p.options.ProfileCeiling {
			return
		}

		link := strings.ToLower(result.URL)
		if !strings.Contains(link, profilePathMarker) || containsAny(link, junkPathSegments) {
			continue
		}
		if !st.markLink(result.URL) {
			continue
		}

		title := CleanResultTitle(result.Title)
		if containsAny(strings.ToLower(title), junkTitleTerms) {
			continue
		}

		parsed, ok := ParseTitle(title)
		if !ok {
			continue
		}

		emails := GenerateEmails(parsed.Name, st.target.Domain, p.options.ShortPermutations)
		if len(emails) == 0 {
			continue
		}

		first, last := SplitName(parsed.Name)
		added := st.addCandidate(domain.CandidateLead{
			DisplayName:     parsed.Name,
			FirstName:       first,
			LastName:        last,
			RoleTitle:       parsed.Role,
			ProfileURL:      result.URL,
			GeneratedEmails: emails,
			Provenance:      domain.ProvenanceSearchEngine,
			SearchEngine:    engineName,
		})
		if added {
			logger.Debug(ctx, "profile candidate found",
				zap.String("name", parsed.Name),
				zap.String("role", parsed.Role),
				zap.String("url", result.URL))
		}
	}
}
