// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/censo-electoral/access"
	"github.com/danielhkuo/censo-electoral/analysis"
	"github.com/danielhkuo/censo-electoral/auth"
	"github.com/danielhkuo/censo-electoral/db"
	"github.com/danielhkuo/censo-electoral/middleware"
)

// Error codes returned in the "code" field of error responses
const (
	CodeUnauthorized         = "unauthorized"
	CodeMissingJurisdiction  = "missing_jurisdiction"
	CodeInvalidVoteCount     = "invalid_vote_count"
	CodeOverlappingCoalition = "overlapping_coalition"
	CodeNotFound             = "not_found"
	CodeInvalidRequest       = "invalid_request"
	CodeInternal             = "internal"
)

// writeError maps a domain error to its HTTP status and error code.
// Unknown errors are logged and reported as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auth.ErrUnauthorized):
		middleware.ErrorCodeResponse(w, http.StatusUnauthorized, CodeUnauthorized, "Session required")

	case errors.Is(err, access.ErrMissingJurisdiction):
		slog.Warn("request without jurisdiction", "path", r.URL.Path, "error", err)
		middleware.ErrorCodeResponse(w, http.StatusForbidden, CodeMissingJurisdiction, "User has no local district or municipality assigned")

	case errors.Is(err, analysis.ErrInvalidVoteCount):
		slog.Warn("invalid vote data", "path", r.URL.Path, "error", err)
		middleware.ErrorCodeResponse(w, http.StatusUnprocessableEntity, CodeInvalidVoteCount, err.Error())

	case errors.Is(err, analysis.ErrOverlappingCoalition):
		middleware.ErrorCodeResponse(w, http.StatusBadRequest, CodeOverlappingCoalition, err.Error())

	case errors.Is(err, db.ErrNotFound):
		middleware.ErrorCodeResponse(w, http.StatusNotFound, CodeNotFound, "Not found")

	case errors.Is(err, access.ErrInvalidFilter),
		errors.Is(err, analysis.ErrInvalidCoalition),
		errors.Is(err, analysis.ErrInvalidGoal),
		errors.Is(err, analysis.ErrInvalidTarget),
		errors.Is(err, analysis.ErrUnknownParty):
		middleware.ErrorCodeResponse(w, http.StatusBadRequest, CodeInvalidRequest, err.Error())

	default:
		slog.Error("request failed", "path", r.URL.Path, "error", err)
		middleware.ErrorCodeResponse(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
	}
}
