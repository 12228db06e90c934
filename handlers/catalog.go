// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"strconv"

	"github.com/danielhkuo/censo-electoral/access"
	"github.com/danielhkuo/censo-electoral/auth"
	"github.com/danielhkuo/censo-electoral/cliparse"
	"github.com/danielhkuo/censo-electoral/db"
	"github.com/danielhkuo/censo-electoral/middleware"
)

type CatalogHandler struct {
	store *db.Store
}

func NewCatalogHandler(conn *sql.DB, cfg cliparse.Config) *CatalogHandler {
	return &CatalogHandler{store: db.NewStore(conn, cfg.Dialect())}
}

// ListParties handles GET /api/partidos
func (h *CatalogHandler) ListParties(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.SessionFromContext(r.Context()); !ok {
		writeError(w, r, auth.ErrUnauthorized)
		return
	}

	parties, err := h.store.ListParties(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, parties)
}

// GetSectionInfo handles GET /api/secciones/{id}/info
// Sections outside the caller's jurisdiction are reported as not found
func (h *CatalogHandler) GetSectionInfo(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, r, auth.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorCodeResponse(w, http.StatusBadRequest, CodeInvalidRequest, "id must be a positive integer")
		return
	}

	p, err := access.NewPredicate(session, access.Filters{})
	if err != nil {
		writeError(w, r, err)
		return
	}

	info, err := h.store.FindSection(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !p.Allows(info.SectionRef()) {
		writeError(w, r, fmt.Errorf("section %d: %w", id, db.ErrNotFound))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, info)
}
