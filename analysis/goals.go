// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/danielhkuo/censo-electoral/models"
)

// partyStats holds per-party totals over a section matrix
type partyStats struct {
	votes       map[string]int64
	percentages map[string]float64
	sections    map[string]int
	totalVotes  int64
}

// computePartyStats totals votes per party and counts the sections each
// party won outright. Only individual parties compete here; a section goes
// to the first party in known order on ties, and to nobody when no party
// has votes.
func computePartyStats(rows []models.SectionRow, parties []string) partyStats {
	stats := partyStats{
		votes:       make(map[string]int64, len(parties)),
		percentages: make(map[string]float64, len(parties)),
		sections:    make(map[string]int, len(parties)),
	}

	for _, row := range rows {
		var best int64
		winner := ""
		for _, code := range parties {
			n := row.Votes[code]
			stats.votes[code] += n
			stats.totalVotes += n
			if n > best {
				best = n
				winner = code
			}
		}
		if winner != "" {
			stats.sections[winner]++
		}
	}

	for _, code := range parties {
		stats.percentages[code] = percentage(stats.votes[code], stats.totalVotes)
	}
	return stats
}

// EvaluateGoals measures each goal against the current results. Progress is
// capped at 100; a goal is achieved at 100, on track from 75, behind below.
func EvaluateGoals(rows []models.SectionRow, parties []string, goals []models.Goal) (*models.GoalsResponse, error) {
	if err := validateRows(rows); err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(parties))
	for _, code := range parties {
		known[code] = true
	}

	for i, g := range goals {
		if strings.TrimSpace(g.Party) == "" {
			return nil, fmt.Errorf("%w: goal %d has no party", ErrInvalidGoal, i+1)
		}
		if !known[g.Party] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownParty, g.Party)
		}
		switch g.Type {
		case models.GoalVotes, models.GoalPercentage, models.GoalSections:
		default:
			return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidGoal, g.Type)
		}
		if g.Target < 0 || math.IsNaN(g.Target) || math.IsInf(g.Target, 0) {
			return nil, fmt.Errorf("%w: target must be a non-negative number", ErrInvalidGoal)
		}
	}

	stats := computePartyStats(rows, parties)

	resp := &models.GoalsResponse{
		TotalVotes:    stats.totalVotes,
		TotalSections: len(rows),
		Goals:         make([]models.GoalProgress, 0, len(goals)),
	}

	for _, g := range goals {
		var current float64
		switch g.Type {
		case models.GoalVotes:
			current = float64(stats.votes[g.Party])
		case models.GoalPercentage:
			current = stats.percentages[g.Party]
		case models.GoalSections:
			current = float64(stats.sections[g.Party])
		}

		progress := goalProgress(current, g.Target)
		resp.Goals = append(resp.Goals, models.GoalProgress{
			Goal:     g,
			Current:  current,
			Progress: progress,
			Status:   goalStatus(progress),
		})
	}

	return resp, nil
}

func goalProgress(current, target float64) float64 {
	if target == 0 {
		return 0
	}
	return math.Min(current/target*100, 100)
}

func goalStatus(progress float64) string {
	switch {
	case progress >= 100:
		return models.GoalAchieved
	case progress >= 75:
		return models.GoalOnTrack
	default:
		return models.GoalBehind
	}
}
