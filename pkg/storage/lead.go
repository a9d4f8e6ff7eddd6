package storage

import (
	"context"

	"leadhunter/pkg/domain"
)

// LeadCursor is the keyset cursor for paginating a company's leads. It carries
// the same columns the page is ordered by, so rows that share a confidence
// score or an insert timestamp are never skipped between pages.
type LeadCursor struct {
	// ConfidenceScore is the score of the last lead on the previous page.
	ConfidenceScore int
	// ID is the ID of the last lead on the previous page, breaking ties
	// between leads with equal confidence.
	ID domain.LeadID
}

// Leads groups a page of leads together with an optional NextCursor used for
// pagination.
type Leads struct {
	// Leads contains the current page of lead records.
	Leads []domain.Lead
	// NextCursor is the cursor for fetching the next page. It is nil when
	// there is no next page.
	NextCursor *LeadCursor
}

// LeadStorage defines operations on admitted leads. Durable deduplication
// lives here: the backend enforces uniqueness on (company, lowercased email)
// and silently skips duplicates, so concurrent scans of the same domain never
// produce duplicate rows.
type LeadStorage interface {
	// StoreLeads inserts leads for a company, skipping any whose email already
	// exists for that company. It returns the number of rows actually inserted.
	StoreLeads(ctx context.Context, leads ...domain.Lead) (int64, error)
	// CompanyLeads returns a page of leads for a company ordered by confidence
	// score descending. A nil cursor fetches the first page.
	CompanyLeads(ctx context.Context, companyID domain.CompanyID, cursor *LeadCursor, limit uint) (Leads, error)
	// CompanyLeadCount returns the number of stored leads for a company.
	CompanyLeadCount(ctx context.Context, companyID domain.CompanyID) (int64, error)
}
