package v1handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"leadhunter/pkg/domain"
	"leadhunter/pkg/serrors"

	"github.com/google/uuid"
)

// Scan is the API representation of a scan request.
type Scan struct {
	ID        uuid.UUID  `json:"id"`
	Domain    string     `json:"domain"`
	Status    string     `json:"status"`
	LeadCount int        `json:"leadCount"`
	Attempts  uint       `json:"attempts"`
	LastError string     `json:"lastError,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ScanList is a page of scans.
type ScanList struct {
	Items      []Scan `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
}

// Lead is the API representation of a discovered lead.
type Lead struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	RoleTitle       string    `json:"roleTitle,omitempty"`
	ProfileURL      string    `json:"profileUrl,omitempty"`
	ConfidenceScore int       `json:"confidenceScore"`
	Status          string    `json:"status"`
	Provenance      string    `json:"provenance"`
	CreatedAt       time.Time `json:"createdAt"`
}

// DomainResults is the API representation of everything known about a domain.
type DomainResults struct {
	Domain      string `json:"domain"`
	CompanyName string `json:"companyName,omitempty"`
	Scanning    bool   `json:"scanning"`
	Leads       []Lead `json:"leads"`
	NextCursor  string `json:"nextCursor,omitempty"`
}

// CreateScanRequest is the payload for scheduling a scan.
type CreateScanRequest struct {
	Domain string `json:"domain"`
}

func domainScanToV1(in *domain.Scan) Scan {
	out := Scan{
		ID:        uuid.UUID(in.ID),
		Domain:    in.Domain,
		Status:    string(in.Status),
		LeadCount: in.LeadCount,
		Attempts:  in.Attempts,
		LastError: in.LastError,
		CreatedAt: in.CreatedAt,
	}
	if !in.UpdatedAt.IsZero() {
		updatedAt := in.UpdatedAt
		out.UpdatedAt = &updatedAt
	}

	return out
}

func domainLeadToV1(in *domain.Lead) Lead {
	return Lead{
		ID:              uuid.UUID(in.ID),
		Email:           in.Email,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		RoleTitle:       in.RoleTitle,
		ProfileURL:      in.ProfileURL,
		ConfidenceScore: in.ConfidenceScore,
		Status:          string(in.Status),
		Provenance:      string(in.Provenance),
		CreatedAt:       in.CreatedAt,
	}
}

// CreateScan schedules a new scan based on the provided request payload.
func (h *Handler) CreateScan(w http.ResponseWriter, r *http.Request) {
	var req CreateScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	s, err := h.deps.Hunter.Enqueue(r.Context(), GetUserIDFromContext(r.Context()), req.Domain)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusAccepted, domainScanToV1(s))
}

// GetScan returns details of a scan by ID.
func (h *Handler) GetScan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid scan id"))

		return
	}

	s, err := h.deps.Hunter.Scan(r.Context(), GetUserIDFromContext(r.Context()), domain.ScanID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, domainScanToV1(s))
}

// ListScans returns a paginated list of the user's scans.
func (h *Handler) ListScans(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	scans, nextCursor, err := h.deps.Hunter.UserScans(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.ScanStatus(q.Get("status")),
		q.Get("cursor"),
		limitParam(q.Get("limit")))
	if err != nil {
		writeError(w, r, err)

		return
	}

	items := make([]Scan, 0, len(scans))
	for i := range scans {
		items = append(items, domainScanToV1(&scans[i]))
	}

	writeJSON(w, http.StatusOK, ScanList{Items: items, NextCursor: nextCursor})
}

// DeleteScan deletes a scan by ID.
func (h *Handler) DeleteScan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid scan id"))

		return
	}

	if err := h.deps.Hunter.Delete(r.Context(), GetUserIDFromContext(r.Context()), domain.ScanID(id)); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetDomainResults returns the leads discovered for a domain together with
// the in-progress marker.
func (h *Handler) GetDomainResults(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	res, err := h.deps.Hunter.DomainResults(r.Context(),
		r.PathValue("domain"),
		q.Get("cursor"),
		limitParam(q.Get("limit")))
	if err != nil {
		writeError(w, r, err)

		return
	}

	leads := make([]Lead, 0, len(res.Leads))
	for i := range res.Leads {
		leads = append(leads, domainLeadToV1(&res.Leads[i]))
	}

	writeJSON(w, http.StatusOK, DomainResults{
		Domain:      res.Company.Domain,
		CompanyName: res.Company.Name,
		Scanning:    res.Scanning,
		Leads:       leads,
		NextCursor:  res.NextCursor,
	})
}

func limitParam(raw string) uint {
	if raw == "" {
		return DefaultLimit
	}

	limit, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || limit == 0 {
		return DefaultLimit
	}

	return uint(limit)
}
