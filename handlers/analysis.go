// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/censo-electoral/access"
	"github.com/danielhkuo/censo-electoral/analysis"
	"github.com/danielhkuo/censo-electoral/auth"
	"github.com/danielhkuo/censo-electoral/cliparse"
	"github.com/danielhkuo/censo-electoral/db"
	"github.com/danielhkuo/censo-electoral/middleware"
	"github.com/danielhkuo/censo-electoral/models"
)

// maxBodyBytes caps analysis request bodies
const maxBodyBytes = 1 << 20

type AnalysisHandler struct {
	store *db.Store
}

func NewAnalysisHandler(conn *sql.DB, cfg cliparse.Config) *AnalysisHandler {
	return &AnalysisHandler{store: db.NewStore(conn, cfg.Dialect())}
}

// scope builds the row predicate for the caller. It fails before any query
// runs when the caller has no session or no jurisdiction.
func scope(r *http.Request) (access.Predicate, error) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		return access.Predicate{}, auth.ErrUnauthorized
	}

	p, err := access.NewPredicate(session, access.Filters{})
	if err != nil {
		return access.Predicate{}, err
	}

	filters, err := access.ParseFilters(r.URL.Query())
	if err != nil {
		return access.Predicate{}, err
	}
	p.Filters = filters

	return p, nil
}

// decodeBody parses a JSON body, writing a 400 on failure
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := middleware.ParseJSONBody(r, v); err != nil {
		middleware.ErrorCodeResponse(w, http.StatusBadRequest, CodeInvalidRequest, "Invalid JSON")
		return false
	}
	return true
}

// sectionData loads the section matrix and the party codes for a predicate
func (h *AnalysisHandler) sectionData(r *http.Request, p access.Predicate) ([]models.SectionRow, []string, error) {
	stations, err := h.store.FetchStations(r.Context(), p)
	if err != nil {
		return nil, nil, err
	}

	rows, err := analysis.SectionMatrix(stations)
	if err != nil {
		return nil, nil, err
	}

	codes, err := h.store.PartyCodes(r.Context())
	if err != nil {
		return nil, nil, err
	}

	return rows, codes, nil
}

// ElectoralResults handles GET /api/analisis/resultados-electorales
// Aggregates every visible polling station into totals, turnout and
// per-party, per-district, per-municipality and per-coalition results
func (h *AnalysisHandler) ElectoralResults(w http.ResponseWriter, r *http.Request) {
	p, err := scope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	stations, err := h.store.FetchStations(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := analysis.Aggregate(stations, analysis.DefaultCoalitions())
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("electoral results computed",
		"stations", result.TotalStations,
		"total_votes", result.TotalVotes,
		"restricted", p.Restricted(),
	)

	middleware.JSONResponse(w, http.StatusOK, result)
}

// Coalitions handles POST /api/analisis/coaliciones
// Resolves the plurality winner of every section among the requested
// coalitions and the parties left outside them
func (h *AnalysisHandler) Coalitions(w http.ResponseWriter, r *http.Request) {
	p, err := scope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CoalitionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rows, codes, err := h.sectionData(r, p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := analysis.ResolveCoalitions(rows, req.Coalitions, codes)
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("coalitions resolved",
		"coalitions", len(result.Coalitions),
		"sections", result.TotalSections,
		"total_votes", result.TotalVotes,
	)

	middleware.JSONResponse(w, http.StatusOK, result)
}

// CoalitionTarget handles POST /api/analisis/coaliciones/objetivo
// Sets per-section vote targets for a group of parties
func (h *AnalysisHandler) CoalitionTarget(w http.ResponseWriter, r *http.Request) {
	p, err := scope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.TargetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rows, codes, err := h.sectionData(r, p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := analysis.CoalitionTarget(rows, req.Parties, codes, req.TargetPercentage)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}

// Goals handles POST /api/analisis/metas
// Reports progress toward per-party vote, percentage and section goals
func (h *AnalysisHandler) Goals(w http.ResponseWriter, r *http.Request) {
	p, err := scope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.GoalsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rows, codes, err := h.sectionData(r, p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := analysis.EvaluateGoals(rows, codes, req.Goals)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}

// SectionGoals handles POST /api/analisis/metas/secciones
// Classifies each section by how close the selected parties are to a share
// of the votes cast
func (h *AnalysisHandler) SectionGoals(w http.ResponseWriter, r *http.Request) {
	p, err := scope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.SectionGoalsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rows, codes, err := h.sectionData(r, p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := analysis.SectionGoals(rows, req.Parties, codes, req.GoalPercentage)
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("section goals evaluated",
		"parties", result.Parties,
		"sections", result.TotalSections,
		"reached", result.Reached,
	)

	middleware.JSONResponse(w, http.StatusOK, result)
}

// Performance handles GET /api/analisis/desempeno?partido=X
func (h *AnalysisHandler) Performance(w http.ResponseWriter, r *http.Request) {
	p, err := scope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	party := strings.TrimSpace(r.URL.Query().Get("partido"))
	if party == "" {
		middleware.ErrorCodeResponse(w, http.StatusBadRequest, CodeInvalidRequest, "partido is required")
		return
	}

	rows, codes, err := h.sectionData(r, p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := analysis.PartyPerformance(rows, codes, party)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}
