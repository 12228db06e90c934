// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the censo-electoral API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Public:

	GET /health
	GET /

Analysis (requires Authorization: Bearer <session token>):

	GET  /api/analisis/resultados-electorales - Aggregated results
	POST /api/analisis/coaliciones            - Per-section coalition winners
	POST /api/analisis/coaliciones/objetivo   - Coalition vote target
	POST /api/analisis/metas                  - Goal tracking
	POST /api/analisis/metas/secciones        - Per-section goal status
	GET  /api/analisis/desempeno              - Party performance

Catalogs (requires a session token):

	GET /api/partidos           - Party catalog
	GET /api/secciones/{id}/info - Section summary

Analysis GET routes accept exact-match query filters (distritoFederal,
distritoLocal, municipio, seccion). Filters narrow the caller's
jurisdiction and never widen it.

# Middleware

Every /api route is wrapped with request logging and session
verification:

	middleware.WithLogging(middleware.RequireSession(cfg.SessionSecret)(h))
*/
package router
