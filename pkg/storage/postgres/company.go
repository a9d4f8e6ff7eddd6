package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"leadhunter/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	companiesTable = "companies"
)

// UpsertCompany inserts a company row for the domain or returns the existing
// one. ON CONFLICT keeps the first stored name so reruns never clobber a
// previously discovered name with a weaker fallback.
func (p *PgSQL) UpsertCompany(ctx context.Context, fqdn, name string) (*domain.Company, error) {
	var row PgCompany
	found, err := p.Builder.Insert(companiesTable).
		Rows(PgCompany{
			Domain: fqdn,
			Name:   sql.NullString{String: name, Valid: name != ""},
		}).
		OnConflict(goqu.DoUpdate("domain", goqu.Record{
			// no-op update so RETURNING yields the existing row
			"domain": goqu.L("EXCLUDED.domain"),
		})).
		Returning(&PgCompany{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not upsert company into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("company upsert for %q returned no row", fqdn)
	}

	return row.ToDomain(), nil
}

// CompanyByDomain fetches a company by its normalized domain.
func (p *PgSQL) CompanyByDomain(ctx context.Context, fqdn string) (*domain.Company, error) {
	var row PgCompany
	found, err := p.Builder.From(companiesTable).
		Where(goqu.I("domain").Eq(fqdn)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch company by domain: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateCompanyName records the name discovered while crawling the company
// site.
func (p *PgSQL) UpdateCompanyName(ctx context.Context, id domain.CompanyID, name string) error {
	_, err := p.Builder.Update(companiesTable).
		Set(goqu.Record{"name": name}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update company name in pg: %w", err)
	}

	return nil
}
