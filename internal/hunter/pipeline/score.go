package pipeline

import (
	"context"
	"fmt"

	"leadhunter/pkg/domain"
	"leadhunter/pkg/logger"
	"leadhunter/pkg/metrics"

	"go.uber.org/zap"
)

// Confidence levels by provenance and verification outcome. Addresses read
// off the company's own site outrank protocol verdicts; profile-derived
// permutations are ranked by how cleanly the probe accepted them.
const (
	confidenceSite         = 100
	confidenceProfileValid = 96
	confidenceProfileRisky = 70
	confidenceGeneric      = 50
)

// verifyAndEmit runs verification over the collected candidates and streams
// admitted leads through emit. Each admitted candidate contributes exactly
// one lead: the first of its addresses that survives the admission policy.
func (p *Pipeline) verifyAndEmit(ctx context.Context, st *scanState, emit Emit, stats Stats) (Stats, error) {
	for _, cand := range st.candidates {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("scan canceled during verification: %w", err)
		}

		lead, verified, ok := p.scoreCandidate(ctx, cand)
		stats.Verified += verified
		if !ok {
			continue
		}

		if err := emit(ctx, lead); err != nil {
			return stats, fmt.Errorf("cannot persist lead %q: %w", lead.Email, err)
		}
		stats.Admitted++
		metrics.LeadsAdmitted.WithLabelValues(string(lead.Provenance)).Inc()
	}

	return stats, nil
}

// scoreCandidate applies the admission policy to one candidate. Returned
// alongside the lead is the number of verification attempts spent on it.
//
// Site-provenance addresses are always admitted as valid with top
// confidence; the address was published by the company itself, which
// overrides protocol-level ambiguity such as catch-all demotion. The probe
// still runs so its verdict is logged and the catch-all cache is warmed.
//
// Profile-derived permutations are tried in order and the first one that is
// not rejected wins. Generic departmental guesses are admitted at low
// confidence unless rejected.
func (p *Pipeline) scoreCandidate(ctx context.Context, cand domain.CandidateLead) (domain.Lead, int, bool) {
	verified := 0

	switch cand.Provenance {
	case domain.ProvenanceSiteHome, domain.ProvenanceSiteInternal:
		res := p.verify(ctx, cand.SourceEmail, false)
		verified++
		if res.Classification != domain.ClassificationValid {
			logger.Debug(ctx, "site email kept despite probe verdict",
				zap.String("email", cand.SourceEmail),
				zap.String("verdict", string(res.Classification)))
		}

		return buildLead(cand, cand.SourceEmail, domain.ClassificationValid, confidenceSite), verified, true

	case domain.ProvenanceSearchEngine:
		for i, email := range cand.GeneratedEmails {
			res := p.verify(ctx, email, i > 0)
			verified++
			switch res.Classification {
			case domain.ClassificationValid:
				return buildLead(cand, email, res.Classification, confidenceProfileValid), verified, true
			case domain.ClassificationRisky:
				return buildLead(cand, email, res.Classification, confidenceProfileRisky), verified, true
			case domain.ClassificationInvalid:
			}
		}

		return domain.Lead{}, verified, false

	case domain.ProvenanceGeneric:
		for _, email := range cand.GeneratedEmails {
			res := p.verify(ctx, email, false)
			verified++
			if res.Classification == domain.ClassificationInvalid {
				continue
			}

			return buildLead(cand, email, res.Classification, confidenceGeneric), verified, true
		}

		return domain.Lead{}, verified, false
	}

	return domain.Lead{}, verified, false
}

// verify dispatches to the session verifier. Short permutations optionally
// stop after the MX check, which classifies them risky at best.
func (p *Pipeline) verify(ctx context.Context, email string, short bool) domain.VerificationResult {
	var res domain.VerificationResult
	if short && !p.options.VerifyShortPermutations {
		res = p.verifier.VerifyMXOnly(ctx, email)
	} else {
		res = p.verifier.Verify(ctx, email)
	}
	metrics.EmailsVerified.WithLabelValues(string(res.Classification)).Inc()

	return res
}

func buildLead(cand domain.CandidateLead, email string, status domain.Classification, confidence int) domain.Lead {
	return domain.Lead{
		Email:           email,
		FirstName:       cand.FirstName,
		LastName:        cand.LastName,
		RoleTitle:       cand.RoleTitle,
		ProfileURL:      cand.ProfileURL,
		ConfidenceScore: confidence,
		Status:          status,
		Provenance:      cand.Provenance,
	}
}
