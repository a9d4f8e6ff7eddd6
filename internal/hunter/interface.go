package hunter

import (
	"context"

	"leadhunter/pkg/domain"
)

// DomainResults bundles everything known about a scanned domain: the company
// record, its stored leads, and whether a scan is still running. Scanning true
// with an empty lead page means the caller should poll again.
type DomainResults struct {
	Company    *domain.Company
	Leads      []domain.Lead
	NextCursor string
	Scanning   bool
}

//go:generate mockgen -package mockhunter -source=interface.go -destination=mock/mockhunter.go *
type Hunter interface {
	// Enqueue normalizes the raw domain, registers the company, stores a
	// pending scan and schedules a background job for it. When a fresh
	// completed result already exists the scan completes immediately from it.
	Enqueue(ctx context.Context, userID domain.UserID, rawDomain string) (*domain.Scan, error)
	// UserScans returns a page of the user's scans filtered by status.
	UserScans(ctx context.Context,
		userID domain.UserID,
		status domain.ScanStatus,
		cursor string,
		limit uint) ([]domain.Scan, string, error)
	// Scan fetches a single scan by ID for the given user.
	Scan(ctx context.Context, userID domain.UserID, scanID domain.ScanID) (*domain.Scan, error)
	// DomainResults returns the company, a lead page and the in-progress
	// marker for a raw domain.
	DomainResults(ctx context.Context, rawDomain, cursor string, limit uint) (*DomainResults, error)
	// Delete removes a scan belonging to the given user.
	Delete(ctx context.Context, userID domain.UserID, scanID domain.ScanID) error
}
