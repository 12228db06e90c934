// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/danielhkuo/censo-electoral/models"
)

// CoalitionTarget sets a vote target for a group of parties as a share of
// the votes they already have, section by section. Sections are returned
// sorted by coalition votes, highest first.
func CoalitionTarget(rows []models.SectionRow, members []string, parties []string, targetPct float64) (*models.TargetAnalysis, error) {
	if math.IsNaN(targetPct) || targetPct <= 0 || targetPct > 100 {
		return nil, fmt.Errorf("%w: %v is outside (0, 100]", ErrInvalidTarget, targetPct)
	}

	codes, err := selectedCodes(members)
	if err != nil {
		return nil, err
	}

	if err := validateRows(rows); err != nil {
		return nil, err
	}

	result := &models.TargetAnalysis{
		Members:          codes,
		TargetPercentage: targetPct,
		Sections:         make([]models.SectionTarget, 0, len(rows)),
	}

	for _, row := range rows {
		total := rowTotal(row.Votes, parties)
		var coalition int64
		for _, code := range codes {
			coalition += row.Votes[code]
		}
		target := roundVotes(float64(coalition) * targetPct / 100)

		result.TotalVotes += total
		result.CoalitionVotes += coalition
		result.Sections = append(result.Sections, models.SectionTarget{
			Section:          row.Number,
			Municipality:     row.Municipality,
			TotalVotes:       total,
			CoalitionVotes:   coalition,
			TargetVotes:      target,
			Percentage:       percentage(coalition, total),
			TargetPercentage: percentage(target, total),
		})
	}

	result.TargetVotes = roundVotes(float64(result.CoalitionVotes) * targetPct / 100)

	sort.SliceStable(result.Sections, func(i, j int) bool {
		return result.Sections[i].CoalitionVotes > result.Sections[j].CoalitionVotes
	})

	return result, nil
}

// selectedCodes trims and deduplicates a party selection, keeping order
func selectedCodes(members []string) ([]string, error) {
	seen := make(map[string]bool)
	codes := []string{}
	for _, code := range members {
		code = strings.TrimSpace(code)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: no parties selected", ErrInvalidCoalition)
	}
	return codes, nil
}

func roundVotes(v float64) int64 {
	return int64(math.Round(v))
}
