// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

import (
	"fmt"
	"math"

	"github.com/danielhkuo/censo-electoral/models"
)

// SectionGoals measures, section by section, how far the selected parties are
// from a share of all votes cast. Sections without votes are skipped and the
// rest keep matrix order.
//
// A section has reached the goal when the share is at least goalPct, is near
// it from 90% of goalPct, and is far below that. Near sections are high
// priority; any other section at 70% of goalPct or more is medium.
func SectionGoals(rows []models.SectionRow, members []string, parties []string, goalPct float64) (*models.SectionGoalsAnalysis, error) {
	if math.IsNaN(goalPct) || goalPct <= 0 || goalPct > 100 {
		return nil, fmt.Errorf("%w: %v is outside (0, 100]", ErrInvalidTarget, goalPct)
	}

	codes, err := selectedCodes(members)
	if err != nil {
		return nil, err
	}

	if err := validateRows(rows); err != nil {
		return nil, err
	}

	result := &models.SectionGoalsAnalysis{
		Parties:        codes,
		GoalPercentage: goalPct,
		Sections:       make([]models.SectionGoal, 0, len(rows)),
	}

	for _, row := range rows {
		total := rowTotal(row.Votes, parties)
		if total == 0 {
			continue
		}
		var votes int64
		for _, code := range codes {
			votes += row.Votes[code]
		}

		sg := models.SectionGoal{
			Section:      row.Number,
			Municipality: row.Municipality,
			District:     row.District,
			TotalVotes:   total,
			PartyVotes:   votes,
			CurrentShare: percentage(votes, total),
			GoalVotes:    int64(math.Ceil(goalPct * float64(total) / 100)),
			Status:       models.SectionGoalFar,
			Priority:     models.PriorityLow,
		}

		switch {
		case shareAtLeast(votes, total, goalPct, 10):
			sg.Status = models.SectionGoalReached
			result.Reached++
		case shareAtLeast(votes, total, goalPct, 9):
			sg.Status = models.SectionGoalNear
			result.Near++
		}

		if sg.Status == models.SectionGoalNear {
			sg.Priority = models.PriorityHigh
		} else if shareAtLeast(votes, total, goalPct, 7) {
			sg.Priority = models.PriorityMedium
		}

		result.TotalVotes += total
		result.PartyVotes += votes
		result.GoalVotes += sg.GoalVotes
		result.Sections = append(result.Sections, sg)
	}

	result.TotalSections = len(result.Sections)
	if result.TotalSections > 0 {
		result.SuccessRate = float64(result.Reached) / float64(result.TotalSections) * 100
	}
	result.AverageShare = percentage(result.PartyVotes, result.TotalVotes)
	result.AdditionalVotes = max(0, result.GoalVotes-result.PartyVotes)

	return result, nil
}

// shareAtLeast reports votes/total*100 >= goalPct*tenths/10, cross-multiplied
// so a share exactly on the threshold counts
func shareAtLeast(votes, total int64, goalPct float64, tenths int) bool {
	return float64(votes)*1000 >= goalPct*float64(total)*float64(tenths)
}
