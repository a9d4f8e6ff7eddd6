package worker

import (
	"context"
	"fmt"

	"leadhunter/internal/hunter"
	"leadhunter/internal/hunter/pipeline"
	"leadhunter/internal/verifier"
	"leadhunter/pkg/browser"
	"leadhunter/pkg/domain"
	"leadhunter/pkg/logger"
	"leadhunter/pkg/metrics"
	"leadhunter/pkg/search"
	"leadhunter/pkg/search/googlesearch"
	"leadhunter/pkg/serrors"
	"leadhunter/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// Options configure how hunt jobs are processed.
type Options struct {
	// Pipeline is handed to every per-scan pipeline instance.
	Pipeline pipeline.Options
	// MaxAttempts guards the failure path: pending scans are only marked
	// failed once the job exhausted its attempt budget.
	MaxAttempts int
	// MaxWorkers bounds concurrent hunt jobs. Each running job holds one
	// browser context for its full duration, so this also caps browser
	// contexts.
	MaxWorkers int
}

// DomainHunterWorker is a River worker that runs the discovery pipeline for a
// domain. For every job it borrows an isolated incognito browsing context
// from the shared launcher, builds a scan-scoped pipeline and verifier
// session on top of it, and streams admitted leads into storage. The context
// is always released when the job ends, successful or not.
//
// One job serves every pending scan for its domain: leads are stored under
// the company, and completion updates all pending scans at once.
type DomainHunterWorker struct {
	river.WorkerDefaults[hunter.JobArgs]

	storage  storage.Storage
	launcher browser.Launcher
	fallback search.Engine
	verifier *verifier.Verifier
	options  Options
}

// NewDomainHunterWorker constructs a DomainHunterWorker.
func NewDomainHunterWorker(
	store storage.Storage,
	launcher browser.Launcher,
	fallback search.Engine,
	v *verifier.Verifier,
	options Options,
) *DomainHunterWorker {
	return &DomainHunterWorker{
		storage:  store,
		launcher: launcher,
		fallback: fallback,
		verifier: v,
		options:  options,
	}
}

// Work executes one hunt job.
func (w *DomainHunterWorker) Work(ctx context.Context, job *river.Job[hunter.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("domain", job.Args.Domain))

	// scans may have been deleted while the job sat in the queue.
	pending, err := w.storage.PendingScanCountByDomain(ctx, job.Args.Domain)
	if err != nil {
		return fmt.Errorf("could not count pending scans: %w", err)
	}
	if pending == 0 {
		logger.Info(ctx, "no pending scans remain for domain, skipping job")

		return nil
	}

	company, err := w.storage.CompanyByDomain(ctx, job.Args.Domain)
	if err != nil {
		return fmt.Errorf("could not get company: %w", err)
	}
	if company == nil {
		// enqueue always upserts the company first; a missing row means the
		// data is gone and retrying cannot help.
		return river.JobCancel(serrors.With(serrors.ErrNotFound, "company not found for domain")) //nolint: wrapcheck
	}

	stats, err := w.hunt(ctx, job.Args, company)
	if err != nil {
		logger.Error(ctx, "hunt failed", zap.Error(err))
		w.failPendingScans(ctx, job.Args.Domain, err)
		metrics.ScansProcessed.WithLabelValues("failed").Inc()

		return fmt.Errorf("could not hunt domain: %w", err)
	}

	if stats.CompanyName != "" && stats.CompanyName != company.Name {
		if err := w.storage.UpdateCompanyName(ctx, company.ID, stats.CompanyName); err != nil {
			logger.Warn(ctx, "could not update company name", zap.Error(err))
		}
	}

	w.completePendingScans(ctx, job.Args.Domain, company.ID)
	metrics.ScansProcessed.WithLabelValues("completed").Inc()
	logger.Info(ctx, "domain hunted successfully",
		zap.Int("candidates", stats.Candidates),
		zap.Int("verified", stats.Verified),
		zap.Int("admitted", stats.Admitted))

	return nil
}

// hunt borrows a browsing context and runs the pipeline over it. Failing to
// obtain the context is the one scan-fatal infrastructure error; everything
// below it degrades per phase inside the pipeline.
func (w *DomainHunterWorker) hunt(
	ctx context.Context,
	args hunter.JobArgs,
	company *domain.Company,
) (pipeline.Stats, error) {
	pager, err := w.launcher.NewContext(ctx)
	if err != nil {
		return pipeline.Stats{}, fmt.Errorf("could not create browser context: %w", err)
	}
	defer func() {
		if err := pager.Close(); err != nil {
			logger.Warn(ctx, "could not close browser context", zap.Error(err))
		}
	}()

	pl := pipeline.New(
		pager,
		googlesearch.New(pager),
		w.fallback,
		w.verifier.NewSession(),
		w.options.Pipeline,
	)

	target := domain.ScanTarget{
		RawDomain:           args.Domain,
		Domain:              args.Domain,
		FallbackCompanyName: args.FallbackCompanyName,
	}

	return pl.Run(ctx, target, func(ctx context.Context, lead domain.Lead) error {
		lead.CompanyID = company.ID
		if _, err := w.storage.StoreLeads(ctx, lead); err != nil {
			return fmt.Errorf("could not store lead: %w", err)
		}

		return nil
	})
}

// completePendingScans marks every pending scan for the domain completed and
// records the company's current lead count on them.
func (w *DomainHunterWorker) completePendingScans(ctx context.Context, fqdn string, companyID domain.CompanyID) {
	count, err := w.storage.CompanyLeadCount(ctx, companyID)
	if err != nil {
		logger.Warn(ctx, "could not count company leads", zap.Error(err))
	}

	leadCount := int(count)
	clearError := ""
	if err := w.storage.UpdatePendingScansByDomain(ctx, fqdn, storage.ScanUpdates{
		Status:    domain.ScanStatusCompleted,
		LeadCount: &leadCount,
		LastError: &clearError,
	}); err != nil {
		logger.Error(ctx, "could not mark scans completed", zap.Error(err))
	}
}

// failPendingScans records the error on pending scans. The MaxAttempts guard
// keeps them pending until the job's retry budget is exhausted.
func (w *DomainHunterWorker) failPendingScans(ctx context.Context, fqdn string, huntErr error) {
	errText := huntErr.Error()
	if err := w.storage.UpdatePendingScansByDomain(ctx, fqdn, storage.ScanUpdates{
		Status:      domain.ScanStatusFailed,
		LastError:   &errText,
		MaxAttempts: w.options.MaxAttempts,
	}); err != nil {
		logger.Error(ctx, "could not mark scans failed", zap.Error(err))
	}
}
