package postgres

import (
	"context"
	"fmt"

	"leadhunter/pkg/domain"
	"leadhunter/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	leadsTable = "leads"
)

// StoreLeads inserts leads for a company. The unique index on
// (company_id, lower(email)) plus DO NOTHING makes the insert idempotent:
// an address already stored for the company is silently skipped, so reruns
// and concurrent scans of the same domain never duplicate leads.
func (p *PgSQL) StoreLeads(ctx context.Context, leads ...domain.Lead) (int64, error) {
	if len(leads) == 0 {
		return 0, nil
	}

	res, err := p.Builder.Insert(leadsTable).
		Rows(domainLeadsToPg(leads)).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not store leads into pg: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read inserted lead count: %w", err)
	}

	return inserted, nil
}

// CompanyLeads returns a page of leads for a company ordered by confidence
// score descending, with the lead ID breaking ties. Pagination keysets on the
// same (confidence_score, id) pair as the ordering: leads of a scan are
// inserted in one statement and share created_at, so a timestamp cursor would
// drop the rest of the batch at a page boundary.
func (p *PgSQL) CompanyLeads(ctx context.Context,
	companyID domain.CompanyID,
	cursor *storage.LeadCursor,
	limit uint) (storage.Leads, error) {
	w := []goqu.Expression{
		goqu.I("company_id").Eq(uuid.UUID(companyID)),
	}
	if cursor != nil {
		w = append(w, goqu.Or(
			goqu.I("confidence_score").Lt(cursor.ConfidenceScore),
			goqu.And(
				goqu.I("confidence_score").Eq(cursor.ConfidenceScore),
				goqu.I("id").Lt(uuid.UUID(cursor.ID)),
			),
		))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	var rows []PgLead
	if err := p.Builder.From(leadsTable).
		Where(w...).
		Order(goqu.I("confidence_score").Desc(), goqu.I("id").Desc()).
		Limit(fetch).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.Leads{}, fmt.Errorf("could not fetch company leads from pg: %w", err)
	}

	var nextCursor *storage.LeadCursor
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		last := trimmed[len(trimmed)-1]
		nextCursor = &storage.LeadCursor{
			ConfidenceScore: last.ConfidenceScore,
			ID:              domain.LeadID(last.ID),
		}
		rows = trimmed
	}

	return storage.Leads{
		Leads:      pgLeadsToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

// CompanyLeadCount returns the number of stored leads for a company.
func (p *PgSQL) CompanyLeadCount(ctx context.Context, companyID domain.CompanyID) (int64, error) {
	count, err := p.Builder.From(leadsTable).
		Where(goqu.I("company_id").Eq(uuid.UUID(companyID))).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count company leads: %w", err)
	}

	return count, nil
}
