// Package v1handler implements the v1 JSON API: scheduling scans, polling
// their status and reading back the leads discovered for a domain.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"leadhunter/internal/hunter"
	"leadhunter/pkg/logger"
	"leadhunter/pkg/serrors"

	"go.uber.org/zap"
)

const DefaultLimit = 20

type Deps struct {
	Hunter hunter.Hunter
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register wires the v1 routes onto the mux. All scan routes require auth;
// the sec handler is applied per route so the mux stays a plain ServeMux.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	mux.Handle("POST /v1/scans", sec.Require(http.HandlerFunc(h.CreateScan)))
	mux.Handle("GET /v1/scans", sec.Require(http.HandlerFunc(h.ListScans)))
	mux.Handle("GET /v1/scans/{id}", sec.Require(http.HandlerFunc(h.GetScan)))
	mux.Handle("DELETE /v1/scans/{id}", sec.Require(http.HandlerFunc(h.DeleteScan)))
	mux.Handle("GET /v1/results/{domain}", sec.Require(http.HandlerFunc(h.GetDomainResults)))
}

// ErrorResponse is the JSON body returned for all error statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps semantic error kinds onto HTTP statuses. Anything without a
// recognized kind is a 500 and its detail stays in the logs.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, serrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, serrors.ErrRateLimited):
		status = http.StatusTooManyRequests
	}

	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
		writeJSON(w, status, ErrorResponse{Error: "internal error"})

		return
	}

	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
