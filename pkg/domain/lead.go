package domain

import (
	"time"

	"github.com/google/uuid"
)

// LeadID uniquely identifies a persisted lead.
type LeadID uuid.UUID

// CompanyID uniquely identifies a company (a scanned domain).
type CompanyID uuid.UUID

// Provenance records which pipeline phase produced a candidate lead. It is
// used to weight confidence: text found on the company's own site outranks
// search-derived permutations, which outrank generic departmental guesses.
type Provenance string

const (
	// ProvenanceSiteHome marks an email found literally on the company's home page.
	ProvenanceSiteHome Provenance = "SITE_HOME"
	// ProvenanceSiteInternal marks an email found on a crawled internal
	// contact/about/team page.
	ProvenanceSiteInternal Provenance = "SITE_INTERNAL"
	// ProvenanceSearchEngine marks a lead derived from a search-engine result
	// pointing at a professional-network profile.
	ProvenanceSearchEngine Provenance = "SEARCH_ENGINE"
	// ProvenanceGeneric marks a departmental guess such as contato@host.
	ProvenanceGeneric Provenance = "GENERIC"
)

// Classification is the deliverability verdict for a single mailbox.
type Classification string

const (
	// ClassificationValid means the mailbox accepted the probe and the domain
	// is not a catch-all.
	ClassificationValid Classification = "valid"
	// ClassificationInvalid means the address is malformed, the domain has no
	// MX record, or the exchange rejected the mailbox outright.
	ClassificationInvalid Classification = "invalid"
	// ClassificationRisky means the probe was inconclusive: catch-all domain,
	// unexpected response code, greylisting, or a network-level failure.
	ClassificationRisky Classification = "risky"
)

// VerificationResult is the outcome of probing one mailbox. It is computed at
// most once per unique email within a scan.
type VerificationResult struct {
	// Email is the probed address.
	Email string `json:"email"`
	// HasMX reports whether the address domain resolved to at least one mail exchange.
	HasMX bool `json:"hasMx"`
	// CatchAll reports whether a fabricated local-part at the same domain was
	// also accepted, making positive probes inconclusive.
	CatchAll bool `json:"catchAll"`
	// Classification is the final verdict per the decision table.
	Classification Classification `json:"classification"`
}

// ScanTarget describes one scan invocation. It is created once per scan and
// is immutable after normalization, except for the discovered display name
// the crawler may fill in.
type ScanTarget struct {
	// RawDomain is the caller input, possibly carrying scheme/www/path noise.
	RawDomain string
	// Domain is the normalized bare host.
	Domain string
	// FallbackCompanyName is the left-most domain label, used for search
	// queries until the crawler discovers a better display name.
	FallbackCompanyName string
	// DiscoveredCompanyName is the display name guessed from the site title.
	// Empty when the site was unreachable or the title was boilerplate.
	DiscoveredCompanyName string
}

// CompanyName returns the best available display name for the target.
func (t ScanTarget) CompanyName() string {
	if t.DiscoveredCompanyName != "" {
		return t.DiscoveredCompanyName
	}

	return t.FallbackCompanyName
}

// CandidateLead is a person (or department) discovered during the crawl or
// search phases, before verification and scoring. Candidates are scan-scoped
// and never outlive the scan.
type CandidateLead struct {
	// DisplayName is the full name as parsed from the page or result title.
	DisplayName string
	// FirstName and LastName are split from DisplayName.
	FirstName string
	LastName  string
	// RoleTitle is the parsed role, or a generic label when none was found.
	RoleTitle string
	// ProfileURL points at the professional-network profile, when the candidate
	// came from a search result.
	ProfileURL string
	// SourceEmail is set when the email was found as literal text on the site;
	// it takes precedence over generated permutations.
	SourceEmail string
	// GeneratedEmails holds the permutations produced for this candidate, in
	// generation order (first.last before first).
	GeneratedEmails []string
	// Provenance records which phase produced the candidate.
	Provenance Provenance
	// SearchEngine names the engine that surfaced the profile, when Provenance
	// is SEARCH_ENGINE.
	SearchEngine string
}

// Emails returns the candidate's addresses in verification order: the literal
// source email first, then generated permutations. Every candidate has at
// least one.
func (c CandidateLead) Emails() []string {
	if c.SourceEmail == "" {
		return c.GeneratedEmails
	}

	return append([]string{c.SourceEmail}, c.GeneratedEmails...)
}

// Lead is the boundary object handed to the persistence collaborator once a
// candidate passes verification and admission. It is the only pipeline entity
// that outlives the scan.
type Lead struct {
	// ID is the unique identifier of the lead.
	ID LeadID `json:"id"`
	// CompanyID links the lead to its company.
	CompanyID CompanyID `json:"companyId"`

	// Email is the admitted address.
	Email string `json:"email"`
	// FirstName and LastName are the parsed person name. For departmental
	// guesses FirstName carries the capitalized prefix and LastName is empty.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	// RoleTitle is the parsed role, or a generic label.
	RoleTitle string `json:"roleTitle"`
	// ProfileURL is the professional-network profile, when known.
	ProfileURL string `json:"profileUrl,omitempty"`
	// ConfidenceScore estimates, in [0,100], that the email is real and deliverable.
	ConfidenceScore int `json:"confidenceScore"`
	// Status is the verification classification recorded for the lead.
	Status Classification `json:"status"`
	// Provenance records which pipeline phase produced the lead.
	Provenance Provenance `json:"provenance"`

	// CreatedAt is when the lead was persisted.
	CreatedAt time.Time `json:"createdAt"`
}

// Company is a scanned domain together with its display name.
type Company struct {
	// ID is the unique identifier of the company.
	ID CompanyID `json:"id"`
	// Domain is the normalized host the company was scanned under.
	Domain string `json:"domain"`
	// Name is the display name, either discovered from the site title or the
	// fallback domain label.
	Name string `json:"name"`
	// CreatedAt is when the company row was first created.
	CreatedAt time.Time `json:"createdAt"`
}
