package storage

import (
	"context"

	"leadhunter/pkg/domain"
)

// CompanyStorage defines operations on company records. Companies are keyed
// by their normalized domain; one company row exists per domain regardless of
// how many users scanned it.
type CompanyStorage interface {
	// UpsertCompany inserts a company for the given domain or returns the
	// existing row. The name is only written on insert; a later scan never
	// overwrites a previously discovered name.
	UpsertCompany(ctx context.Context, fqdn, name string) (*domain.Company, error)
	// CompanyByDomain fetches a company by its normalized domain. Returns nil
	// when the domain was never scanned.
	CompanyByDomain(ctx context.Context, fqdn string) (*domain.Company, error)
	// UpdateCompanyName sets the company name discovered during a scan.
	UpdateCompanyName(ctx context.Context, ID domain.CompanyID, name string) error
}
