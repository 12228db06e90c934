// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the censo-electoral API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - AnalysisHandler: results, coalitions, targets, goals, section goals
    and performance
  - CatalogHandler: party catalog and section summaries

Handlers are created via constructor functions that accept *sql.DB and Config:

	analysisHandler := handlers.NewAnalysisHandler(db, cfg)

# Request Scope

Every handler reads the verified session placed in the request context by
middleware.RequireSession. The session becomes an access.Predicate, and the
request's filters are ANDed onto it, so the store never returns stations
outside the caller's jurisdiction.

# Errors

Failures are mapped to status codes in one place (writeError) with a
machine-readable code:

	unauthorized           401
	missing_jurisdiction   403
	not_found              404
	invalid_vote_count     422
	overlapping_coalition  400
	invalid_request        400
	internal               500

Each request loads its own snapshot and builds its own accumulators, so
handlers are safe for concurrent use.
*/
package handlers
