package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScanID uniquely identifies a domain scan.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ScanID uuid.UUID

// ScanStatus represents the lifecycle state of a scan.
// It can be pending, completed, or failed.
type ScanStatus string

const (
	// ScanStatusPending indicates the scan has been enqueued but the pipeline
	// has not finished yet. Pending rows double as the "in-progress" marker a
	// polling caller uses to distinguish "still running" from "found nothing".
	ScanStatusPending ScanStatus = "PENDING"
	// ScanStatusCompleted indicates the pipeline finished and all admitted leads
	// have been handed to storage.
	ScanStatusCompleted ScanStatus = "COMPLETED"
	// ScanStatusFailed indicates the scan ended with an error; see LastError and Attempts for details.
	ScanStatusFailed ScanStatus = "FAILED"
)

// Scan represents a single domain scan request and its current state.
type Scan struct {
	// ID is the unique identifier of the scan.
	ID ScanID `json:"id"`
	// UserID is the identifier of the user who requested the scan.
	UserID UserID `json:"userId"`
	// CompanyID is the company the scan belongs to, resolved from the
	// normalized domain when the scan is enqueued.
	CompanyID CompanyID `json:"companyId"`

	// Domain is the normalized target host, e.g. "acme.com.br".
	Domain string `json:"domain"`
	// Status is the current lifecycle state of the scan.
	Status ScanStatus `json:"status"`
	// LeadCount is the number of leads the pipeline admitted for this scan.
	// It is only meaningful once Status is COMPLETED.
	LeadCount int `json:"leadCount"`

	// Attempts is the number of times the worker has tried to process this scan.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent error message, if any, encountered while processing the scan.
	LastError string `json:"-"`

	// CreatedAt is the time when the scan request was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the scan was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the scan was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
