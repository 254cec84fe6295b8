// Package chi exposes the lexidex HTTP API.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lexidex/lexidex/internal/domain"
	healthuc "github.com/lexidex/lexidex/internal/usecase/health"
	queryuc "github.com/lexidex/lexidex/internal/usecase/query"
	stringsuc "github.com/lexidex/lexidex/internal/usecase/strings"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server handles the lexidex HTTP API.
type Server struct {
	strings       *stringsuc.Service
	query         *queryuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	strings *stringsuc.Service,
	query *queryuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		strings: strings,
		query:   query,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrStringNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrNoPatternMatched, http.StatusBadRequest, codeTranslationFailed),
		sentinelHandler(domain.ErrConflictingFilters, http.StatusBadRequest, codeConflictingFilters),
		sentinelHandler(domain.ErrInvalidFilter, http.StatusBadRequest, codeValidationFailed),
	}
	return s
}

// Routes mounts all API routes on r.
func (s *Server) Routes(r chi.Router) {
	r.Route("/api/v1/strings", func(r chi.Router) {
		r.Post("/", s.CreateString)
		r.Get("/", s.ListStrings)
		r.Get("/filter", s.FilterStrings)
		r.Get("/query", s.QueryStrings)
		r.Get("/{id}", s.GetString)
		r.Delete("/{id}", s.DeleteString)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// CreateString handles POST /api/v1/strings.
func (s *Server) CreateString(w http.ResponseWriter, r *http.Request) {
	var req createStringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Value == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Value is required")
		return
	}

	rec, created, err := s.strings.Create(r.Context(), req.Value)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		w.Header().Set("Location", "/api/v1/strings/"+rec.ID())
	}
	writeJSON(w, status, recordToResponse(&rec))
}

// ListStrings handles GET /api/v1/strings.
func (s *Server) ListStrings(w http.ResponseWriter, r *http.Request) {
	recs, err := s.strings.List(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Data:  recordsToResponse(recs),
		Count: len(recs),
	})
}

// GetString handles GET /api/v1/strings/{id}.
func (s *Server) GetString(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := s.strings.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, recordToResponse(&rec))
}

// DeleteString handles DELETE /api/v1/strings/{id}.
func (s *Server) DeleteString(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.strings.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// FilterStrings handles GET /api/v1/strings/filter.
// Explicit query parameters bypass the translator and are parsed into
// a filter set directly; malformed values never reach the core.
func (s *Server) FilterStrings(w http.ResponseWriter, r *http.Request) {
	set, err := parseFilterSet(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	recs, err := s.query.Filter(r.Context(), set)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, filterListResponse{
		Data:           recordsToResponse(recs),
		Count:          len(recs),
		FiltersApplied: filterSetToMap(set),
	})
}

// QueryStrings handles GET /api/v1/strings/query.
func (s *Server) QueryStrings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Query parameter q is required")
		return
	}

	recs, tr, err := s.query.Interpret(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, queryListResponse{
		Data:  recordsToResponse(recs),
		Count: len(recs),
		InterpretedQuery: interpretedQuery{
			Original:       q,
			MatchedPhrases: tr.Matches(),
			Filters:        filterSetToMap(tr.Filters()),
		},
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrStringNotFound,
		domain.ErrNoPatternMatched,
		domain.ErrConflictingFilters,
		domain.ErrInvalidFilter,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Warn("domain error", zap.Error(err), zap.String("path", r.URL.Path))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
