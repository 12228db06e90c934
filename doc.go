// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the censo-electoral API server.

censo-electoral serves read-only analyses over a census of polling
stations: vote aggregation by party and coalition, per-section coalition
winners, vote targets, goal tracking and party performance. Every
analysis is scoped to the caller's jurisdiction.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=censo.db SESSION_SECRET=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -session-secret "..."

Values are also read from a .env file (see -env-file). Variables already
present in the environment take precedence over the file.

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite path or PostgreSQL connection string
  - SESSION_SECRET (-session-secret): HMAC secret for session tokens

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

# Architecture

  - analysis: pure aggregation and coalition algorithms
  - access: jurisdiction predicate derived from the session
  - db: schema, goqu query building and census loading
  - auth: session token signing and verification
  - handlers: HTTP request handlers
  - router: route definitions using Go 1.22+ routing
  - middleware: session check, CORS, logging, JSON helpers
  - models: request and response types
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
