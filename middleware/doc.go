// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status, duration_ms).

# Sessions

RequireSession verifies the bearer token issued by the auth provider and
puts the session in the request context:

	requireSession := middleware.RequireSession(cfg.SessionSecret)
	mux.HandleFunc("GET /api/partidos", middleware.WithLogging(requireSession(handler)))

	session, ok := middleware.SessionFromContext(r.Context())

Requests without a valid token get 401 with code "unauthorized".

# CORS Middleware

Enable cross-origin requests for dashboard access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with headers Content-Type, Authorization.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorCodeResponse(w, http.StatusForbidden, "missing_jurisdiction", "message")

Every error body carries the HTTP status text, a message and a
machine-readable code.

Parse JSON request bodies:

	var req models.CoalitionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorCodeResponse(w, http.StatusBadRequest, "invalid_request", "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in request and rejection logs.
*/
package middleware
