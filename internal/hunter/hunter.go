// Package hunter exposes the lead-discovery service: enqueueing domain scans,
// polling their status and reading back the leads a scan produced. The heavy
// lifting happens in internal/hunter/pipeline, driven by a background worker.
package hunter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"leadhunter/internal/config"
	"leadhunter/pkg/domain"
	"leadhunter/pkg/serrors"
	"leadhunter/pkg/storage"

	"github.com/google/uuid"
)

// Options configure how hunt jobs are enqueued and how results are cached.
// These settings are typically derived from application configuration.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when processing a hunt job before marking it failed.
	MaxAttempts int
	// ResultCacheTTL is the duration during which a completed result makes new
	// scan requests for the same domain reuse that result instead of enqueueing
	// a duplicate job.
	ResultCacheTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:    cfg.Hunter.MaxAttempts,
		ResultCacheTTL: cfg.Hunter.ResultCacheTTL,
	}
}

// hunter is the concrete implementation of the Hunter interface.
// It coordinates persistence with the storage layer and job enqueueing.
type hunter struct {
	// options holds runtime configuration that affects enqueueing and caching.
	options Options
	// storage is the persistence layer used to store scans, companies and leads.
	storage storage.Storage
}

// Enqueue stores a new scan request for the given domain and user, and
// attempts to enqueue a background job to process it. The company row for the
// domain is created on first sight. If a recent completed result exists for
// the same domain (within ResultCacheTTL), the new scan is immediately marked
// as completed; its leads are already stored under the company.
func (h hunter) Enqueue(ctx context.Context, userID domain.UserID, rawDomain string) (*domain.Scan, error) {
	target := NewScanTarget(rawDomain)
	if target.Domain == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid domain")
	}

	var scan *domain.Scan
	if err := h.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		company, err := tx.UpsertCompany(ctx, target.Domain, target.FallbackCompanyName)
		if err != nil {
			return fmt.Errorf("could not upsert company: %w", err)
		}

		res, err := tx.StoreScans(ctx, domain.Scan{
			UserID:    userID,
			CompanyID: company.ID,
			Domain:    target.Domain,
			Status:    domain.ScanStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store scan: %w", err)
		}
		scan = &res[0]

		jobAdded, err := tx.AddJob(ctx, JobArgs{
			Domain:              target.Domain,
			FallbackCompanyName: target.FallbackCompanyName,
			maxAttempts:         h.options.MaxAttempts,
			uniqueJobPeriod:     h.options.ResultCacheTTL,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		// if a job was not added, another job already exists for this domain.
		// river unique jobs prevent duplicate jobs for the same domain.
		if !jobAdded {
			// if the existing job already completed, reuse its result for the
			// new scan instead of waiting for a worker that will never come.
			lastResult, err := tx.LastCompletedScanByDomain(ctx, target.Domain)
			if err != nil {
				return fmt.Errorf("could not get last completed scan: %w", err)
			}

			if lastResult != nil {
				updated, err := tx.UpdateScanByID(ctx, scan.ID, storage.ScanUpdates{
					Status:    domain.ScanStatusCompleted,
					LeadCount: &lastResult.LeadCount,
				})
				if err != nil {
					return fmt.Errorf("could not update scan: %w", err)
				}
				scan = updated
			} // else: the job is in the queue and will be processed soon.
			// Job will automatically update all pending scans by domain upon completion.
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue domain: %w", err)
	}

	return scan, nil
}

// UserScans returns a page of scans for the given user filtered by status.
// It supports cursor-based pagination using an RFC3339 timestamp string and
// returns the next cursor when more results are available.
func (h hunter) UserScans(ctx context.Context,
	userID domain.UserID,
	status domain.ScanStatus,
	cursor string,
	limit uint) ([]domain.Scan, string, error) {
	cursorTime, err := parseCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	page, err := h.storage.UserScans(ctx, userID, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user scans: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Scans, next, nil
}

// Scan fetches a single scan by ID for the given user. It returns a
// not-found error when no matching scan exists.
func (h hunter) Scan(ctx context.Context, userID domain.UserID, scanID domain.ScanID) (*domain.Scan, error) {
	res, err := h.storage.ScanByID(ctx, userID, scanID)
	if err != nil {
		return nil, fmt.Errorf("could not get scan: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "scan not found")
	}

	return res, nil
}

// DomainResults returns the company, a page of its leads and the in-progress
// marker for a raw domain. The marker is derived from pending scans for the
// domain; callers seeing Scanning true should poll until it clears.
func (h hunter) DomainResults(ctx context.Context, rawDomain, cursor string, limit uint) (*DomainResults, error) {
	fqdn := NormalizeDomain(rawDomain)
	if fqdn == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid domain")
	}

	leadCursor, err := parseLeadCursor(cursor)
	if err != nil {
		return nil, err
	}

	company, err := h.storage.CompanyByDomain(ctx, fqdn)
	if err != nil {
		return nil, fmt.Errorf("could not get company: %w", err)
	}
	if company == nil {
		return nil, serrors.With(serrors.ErrNotFound, "domain never scanned")
	}

	pending, err := h.storage.PendingScanCountByDomain(ctx, fqdn)
	if err != nil {
		return nil, fmt.Errorf("could not count pending scans: %w", err)
	}

	page, err := h.storage.CompanyLeads(ctx, company.ID, leadCursor, limit)
	if err != nil {
		return nil, fmt.Errorf("could not get company leads: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = formatLeadCursor(page.NextCursor)
	}

	return &DomainResults{
		Company:    company,
		Leads:      page.Leads,
		NextCursor: next,
		Scanning:   pending > 0,
	}, nil
}

// Delete removes a scan belonging to the given user. If the scan does not
// exist, a not-found error is returned. Jobs are not cancelled here because
// other pending scans may still depend on the same domain job.
func (h hunter) Delete(ctx context.Context, userID domain.UserID, scanID domain.ScanID) error {
	res, err := h.storage.DeleteScan(ctx, userID, scanID)
	if err != nil {
		return fmt.Errorf("could not delete scan: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "scan not found")
	}

	// we don't delete jobs from the queue here because there might be other
	// scans depending on the job. the worker makes sure there are still
	// pending scans for the domain before processing.

	return nil
}

func parseCursor(cursor string) (time.Time, error) {
	if cursor == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.RFC3339, cursor)
	if err != nil {
		return time.Time{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	return t, nil
}

// parseLeadCursor decodes a "<confidence>:<lead id>" lead-page cursor as
// produced by formatLeadCursor. An empty cursor selects the first page.
func parseLeadCursor(cursor string) (*storage.LeadCursor, error) {
	if cursor == "" {
		return nil, nil
	}

	score, rawID, ok := strings.Cut(cursor, ":")
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid cursor")
	}
	confidence, err := strconv.Atoi(score)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	return &storage.LeadCursor{ConfidenceScore: confidence, ID: domain.LeadID(id)}, nil
}

func formatLeadCursor(cursor *storage.LeadCursor) string {
	return fmt.Sprintf("%d:%s", cursor.ConfidenceScore, uuid.UUID(cursor.ID))
}

// New creates a new Hunter instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Hunter {
	return &hunter{
		options: options,
		storage: storage,
	}
}
