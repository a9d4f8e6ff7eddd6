package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// ScansProcessed counts finished scan jobs by terminal status.
	ScansProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leadhunter",
		Subsystem: "worker",
		Name:      "scans_processed_total",
		Help:      "Number of scan jobs that reached a terminal status.",
	}, []string{"status"})

	// EmailsVerified counts mailbox verifications by resulting classification.
	EmailsVerified = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leadhunter",
		Subsystem: "verifier",
		Name:      "emails_verified_total",
		Help:      "Number of mailbox verification attempts by classification.",
	}, []string{"classification"})

	// LeadsAdmitted counts leads that passed scoring by provenance.
	LeadsAdmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leadhunter",
		Subsystem: "pipeline",
		Name:      "leads_admitted_total",
		Help:      "Number of leads admitted to storage by provenance.",
	}, []string{"provenance"})

	// SearchQueries counts issued search-engine queries by engine and outcome.
	SearchQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leadhunter",
		Subsystem: "pipeline",
		Name:      "search_queries_total",
		Help:      "Number of search-engine queries by engine and outcome.",
	}, []string{"engine", "outcome"})
)
