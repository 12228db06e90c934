// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and response types for the API.

# Domain Types

Census data read from the datastore:

  - Party: code (siglas), display name, optional color
  - PollingStation: casilla with type and registered voter roll
  - SectionRef: section with municipality and district ancestry
  - VoteRecord: one (station, party) tally
  - StationVotes: a station joined with its section and votes
  - SectionRow: per-section vote matrix row (party code -> votes)
  - SectionInfo: section detail for lookups

Analysis-only types that are never persisted:

  - Coalition: analyst-defined group of party codes
  - Goal: a target for a party (votes, percentage, or sections)

# Result Types

  - AggregationResult: totals, turnout, and breakdowns by party, district,
    municipality and coalition. JSON field names follow the public
    resultados-electorales payload (totalVotes, totalListaNominal, ...).
  - CoalitionAnalysis: standings and per-section winners
  - TargetAnalysis: coalition vote targets per section
  - SectionGoalsAnalysis: per-section progress toward a vote share goal
  - GoalProgress: goal progress and status
  - PartyPerformance: wins, margins, best/worst sections for one party

# Constants

Roles:

	RoleSuper  = "SUPER_USER"
	RoleAdmin  = "ADMIN"
	RoleEditor = "EDITOR"
	RoleBasic  = "USER"

Station types:

	StationBasic         = "BASICA"
	StationAdjacent      = "CONTIGUA"
	StationExtraordinary = "EXTRAORDINARIA"
	StationSpecial       = "ESPECIAL"

Goal types: votes, percentage, sections. Goal statuses: achieved, on-track, behind.

Section goal statuses: reached, near, far. Priorities: high, medium, low.
*/
package models
