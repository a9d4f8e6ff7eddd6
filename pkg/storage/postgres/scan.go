package postgres

import (
	"context"
	"fmt"
	"time"

	"leadhunter/pkg/domain"
	"leadhunter/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	scansTable = "scans"
)

func (p *PgSQL) StoreScans(ctx context.Context, scans ...domain.Scan) ([]domain.Scan, error) {
	if len(scans) == 0 {
		return nil, nil
	}

	var result []PgScan
	if err := p.Builder.Insert(scansTable).
		Rows(domainScansToPg(scans)).
		Returning(&PgScan{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store scans into pg: %w", err)
	}

	return pgScansToDomain(result), nil
}

// scanUpdateRecord builds the goqu record shared by the scan update paths.
// Attempts is incremented by 1 and updated_at is set.
func scanUpdateRecord(updates storage.ScanUpdates) goqu.Record {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
	}
	if updates.Status != "" {
		rec["status"] = updates.Status
	}
	if updates.LeadCount != nil {
		rec["lead_count"] = *updates.LeadCount
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	// a failure only becomes terminal once the attempt budget is exhausted;
	// earlier failures leave the scan pending for the retry.
	if updates.Status == domain.ScanStatusFailed && updates.MaxAttempts > 0 {
		rec["status"] = goqu.L(
			"CASE WHEN attempts + 1 >= ? THEN ? ELSE status END",
			updates.MaxAttempts, string(domain.ScanStatusFailed))
	}

	return rec
}

// UpdatePendingScansByDomain updates all pending scans for the given domain
// with provided fields. Only non-nil fields from updates are set.
func (p *PgSQL) UpdatePendingScansByDomain(ctx context.Context, fqdn string, updates storage.ScanUpdates) error {
	_, err := p.Builder.Update(scansTable).
		Set(scanUpdateRecord(updates)).Where(
		goqu.I("domain").Eq(fqdn),
		goqu.I("status").Eq(string(domain.ScanStatusPending)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update pending scans by domain in pg: %w", err)
	}

	return nil
}

// PendingScanCountByDomain counts non-deleted pending scans for the domain.
func (p *PgSQL) PendingScanCountByDomain(ctx context.Context, fqdn string) (int64, error) {
	count, err := p.Builder.From(scansTable).
		Where(
			goqu.I("domain").Eq(fqdn),
			goqu.I("status").Eq(string(domain.ScanStatusPending)),
			goqu.I("deleted_at").IsNull(),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count pending scans by domain: %w", err)
	}

	return count, nil
}

// UpdateScanByID updates a single scan and returns the updated row, or nil
// when the scan does not exist or is soft-deleted.
func (p *PgSQL) UpdateScanByID(ctx context.Context, id domain.ScanID, updates storage.ScanUpdates) (*domain.Scan, error) {
	var row PgScan
	found, err := p.Builder.Update(scansTable).
		Set(scanUpdateRecord(updates)).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgScan{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update scan by id in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteScan performs a soft delete by setting deleted_at timestamp
// for a given scan id and user, returning the deleted record.
func (p *PgSQL) DeleteScan(ctx context.Context, userID domain.UserID, id domain.ScanID) (*domain.Scan, error) {
	var row PgScan
	found, err := p.Builder.Update(scansTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgScan{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete scan in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserScans returns a list of scans for a user filtered by optional status and
// cursor, limited by limit. Results are ordered by created_at DESC, id DESC.
// Returns the next cursor for pagination.
func (p *PgSQL) UserScans(ctx context.Context,
	userID domain.UserID,
	status domain.ScanStatus,
	cursor time.Time,
	limit uint) (storage.UserScans, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(scansTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgScan
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserScans{}, fmt.Errorf("could not fetch user scans from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	return storage.UserScans{
		Scans:      pgScansToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

// ScanByID returns a scan by its ID, excluding soft-deleted rows.
func (p *PgSQL) ScanByID(ctx context.Context, userID domain.UserID, id domain.ScanID) (*domain.Scan, error) {
	var row PgScan
	found, err := p.Builder.From(scansTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch scan by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// LastCompletedScanByDomain returns the most recent completed scan for the
// domain across all users, or nil when the domain was never fully scanned.
func (p *PgSQL) LastCompletedScanByDomain(ctx context.Context, fqdn string) (*domain.Scan, error) {
	var row PgScan
	found, err := p.Builder.From(scansTable).
		Where(
			goqu.I("domain").Eq(fqdn),
			goqu.I("status").Eq(string(domain.ScanStatusCompleted)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("updated_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch last completed scan by domain: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
