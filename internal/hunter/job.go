package hunter

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for a domain hunt job submitted to River.
// The struct is used as the unique key for jobs to prevent duplicate work per
// domain.
type JobArgs struct {
	// Domain is the normalized domain to hunt. It is marked as unique so River
	// can enforce one job per domain according to InsertOpts.UniqueOpts.
	Domain string `json:"domain" river:"unique"`
	// FallbackCompanyName seeds search queries when the site crawl discovers
	// no better name.
	FallbackCompanyName string `json:"fallback_company_name"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod defines the lookback window during which a job with the
	// same arguments is considered a duplicate across the specified states.
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the hunt worker.
func (args JobArgs) Kind() string { return "HuntDomainJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints to prevent
// duplicate jobs for the same domain across multiple job states.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// make sure we only have one job per domain in any state
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
