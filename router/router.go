// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/censo-electoral/cliparse"
	"github.com/danielhkuo/censo-electoral/handlers"
	"github.com/danielhkuo/censo-electoral/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(db, cfg)
	catalogHandler := handlers.NewCatalogHandler(db, cfg)

	// Every /api route needs a verified session
	secured := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireSession(cfg.SessionSecret)(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Electoral analysis
	mux.HandleFunc("GET /api/analisis/resultados-electorales", secured(analysisHandler.ElectoralResults))
	mux.HandleFunc("POST /api/analisis/coaliciones", secured(analysisHandler.Coalitions))
	mux.HandleFunc("POST /api/analisis/coaliciones/objetivo", secured(analysisHandler.CoalitionTarget))
	mux.HandleFunc("POST /api/analisis/metas", secured(analysisHandler.Goals))
	mux.HandleFunc("POST /api/analisis/metas/secciones", secured(analysisHandler.SectionGoals))
	mux.HandleFunc("GET /api/analisis/desempeno", secured(analysisHandler.Performance))

	// Catalogs
	mux.HandleFunc("GET /api/partidos", secured(catalogHandler.ListParties))
	mux.HandleFunc("GET /api/secciones/{id}/info", secured(catalogHandler.GetSectionInfo))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("censo-electoral API v1"))
	})

	return mux
}
