// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package analysis turns polling station votes into electoral results.
//
// Every function here is pure: it takes already-filtered rows, does no I/O,
// and returns the same output for the same input. The entry points are:
//
//   - Aggregate: totals, turnout and breakdowns by party, local district,
//     municipality and coalition
//   - SectionMatrix: one row of party tallies per section
//   - ResolveCoalitions: plurality winner per section among coalitions and
//     standalone parties
//   - CoalitionTarget: vote targets for a group of parties
//   - EvaluateGoals: progress toward per-party goals
//   - SectionGoals: per-section status toward a vote share goal
//   - PartyPerformance: section-by-section results for one party
//
// A negative vote count anywhere in the input aborts the computation with an
// *InvalidVoteCountError; no partial result is returned.
package analysis
