// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/danielhkuo/censo-electoral/models"
)

func TestSectionGoalsThresholds(t *testing.T) {
	// every section has 100 votes against a 50% goal
	tests := []struct {
		name         string
		votes        int64
		wantStatus   string
		wantPriority string
	}{
		{"above goal", 60, models.SectionGoalReached, models.PriorityMedium},
		{"exactly at goal", 50, models.SectionGoalReached, models.PriorityMedium},
		{"exactly 90% of goal", 45, models.SectionGoalNear, models.PriorityHigh},
		{"just below 90% of goal", 44, models.SectionGoalFar, models.PriorityMedium},
		{"exactly 70% of goal", 35, models.SectionGoalFar, models.PriorityMedium},
		{"just below 70% of goal", 34, models.SectionGoalFar, models.PriorityLow},
		{"no votes for the selection", 0, models.SectionGoalFar, models.PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []models.SectionRow{
				row(1, 101, "Centro", map[string]int64{"A": tt.votes, "X": 100 - tt.votes}),
			}

			result, err := SectionGoals(rows, []string{"A"}, []string{"A", "X"}, 50)
			if err != nil {
				t.Fatalf("SectionGoals failed: %v", err)
			}
			if len(result.Sections) != 1 {
				t.Fatalf("Expected 1 section, got %d", len(result.Sections))
			}

			sg := result.Sections[0]
			if sg.Status != tt.wantStatus {
				t.Errorf("Expected status %s, got %s", tt.wantStatus, sg.Status)
			}
			if sg.Priority != tt.wantPriority {
				t.Errorf("Expected priority %s, got %s", tt.wantPriority, sg.Priority)
			}
			if sg.GoalVotes != 50 {
				t.Errorf("Expected goal of 50 votes, got %d", sg.GoalVotes)
			}
			assertFloat(t, "current share", sg.CurrentShare, float64(tt.votes))
		})
	}
}

func TestSectionGoalsGoalVotesRoundUp(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		goalPct float64
		want    int64
	}{
		{"half vote rounds up", 101, 50, 51},
		{"fraction rounds up", 10, 33, 4},
		{"exact product", 200, 55, 110},
		{"full goal", 7, 100, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []models.SectionRow{
				row(1, 101, "Centro", map[string]int64{"A": 1, "X": tt.total - 1}),
			}

			result, err := SectionGoals(rows, []string{"A"}, []string{"A", "X"}, tt.goalPct)
			if err != nil {
				t.Fatalf("SectionGoals failed: %v", err)
			}
			if got := result.Sections[0].GoalVotes; got != tt.want {
				t.Errorf("Expected %d goal votes, got %d", tt.want, got)
			}
		})
	}
}

func TestSectionGoalsSummary(t *testing.T) {
	rows := []models.SectionRow{
		row(1, 101, "Centro", map[string]int64{"A": 30, "B": 20, "X": 50}),
		row(2, 102, "Centro", map[string]int64{"A": 45, "X": 55}),
		row(3, 103, "Norte", map[string]int64{"A": 0, "B": 0, "X": 0}),
		row(4, 104, "Norte", map[string]int64{"A": 20, "B": 15, "X": 65}),
		row(5, 105, "Norte", map[string]int64{}),
	}

	result, err := SectionGoals(rows, []string{"A", " B", "A"}, []string{"A", "B", "X"}, 50)
	if err != nil {
		t.Fatalf("SectionGoals failed: %v", err)
	}

	if len(result.Parties) != 2 {
		t.Errorf("Expected parties to be deduplicated, got %v", result.Parties)
	}
	if result.TotalSections != 3 {
		t.Fatalf("Expected sections without votes to be skipped, got %d", result.TotalSections)
	}
	for i, want := range []int{101, 102, 104} {
		if result.Sections[i].Section != want {
			t.Errorf("Section %d: expected %d, got %d", i, want, result.Sections[i].Section)
		}
	}

	if result.Reached != 1 || result.Near != 1 {
		t.Errorf("Expected 1 reached and 1 near, got %d and %d", result.Reached, result.Near)
	}
	if result.TotalVotes != 300 || result.PartyVotes != 130 || result.GoalVotes != 150 {
		t.Errorf("Unexpected totals: %+v", result)
	}
	if result.AdditionalVotes != 20 {
		t.Errorf("Expected 20 additional votes, got %d", result.AdditionalVotes)
	}
	assertFloat(t, "success rate", result.SuccessRate, 100.0/3)
	assertFloat(t, "average share", result.AverageShare, 130.0/3)

	if result.Sections[2].Status != models.SectionGoalFar || result.Sections[2].Priority != models.PriorityMedium {
		t.Errorf("Expected section 104 far with medium priority, got %+v", result.Sections[2])
	}
}

func TestSectionGoalsAdditionalVotesNeverNegative(t *testing.T) {
	rows := []models.SectionRow{
		row(1, 101, "Centro", map[string]int64{"A": 90, "X": 10}),
	}

	result, err := SectionGoals(rows, []string{"A"}, []string{"A", "X"}, 40)
	if err != nil {
		t.Fatalf("SectionGoals failed: %v", err)
	}
	if result.AdditionalVotes != 0 {
		t.Errorf("Expected no additional votes, got %d", result.AdditionalVotes)
	}
	assertFloat(t, "success rate", result.SuccessRate, 100)
}

func TestSectionGoalsEmpty(t *testing.T) {
	result, err := SectionGoals(nil, []string{"A"}, []string{"A"}, 50)
	if err != nil {
		t.Fatalf("SectionGoals failed: %v", err)
	}
	if result.Sections == nil || len(result.Sections) != 0 {
		t.Errorf("Expected an empty section list, got %v", result.Sections)
	}
	assertFloat(t, "success rate", result.SuccessRate, 0)
	assertFloat(t, "average share", result.AverageShare, 0)
}

func TestSectionGoalsValidation(t *testing.T) {
	rows := []models.SectionRow{row(1, 1, "Centro", map[string]int64{"A": 1})}

	tests := []struct {
		name    string
		rows    []models.SectionRow
		members []string
		pct     float64
		wantErr error
	}{
		{"zero percentage", rows, []string{"A"}, 0, ErrInvalidTarget},
		{"negative percentage", rows, []string{"A"}, -5, ErrInvalidTarget},
		{"above one hundred", rows, []string{"A"}, 101, ErrInvalidTarget},
		{"nan", rows, []string{"A"}, math.NaN(), ErrInvalidTarget},
		{"no parties", rows, nil, 50, ErrInvalidCoalition},
		{"negative tally", []models.SectionRow{row(1, 1, "Centro", map[string]int64{"A": -1})}, []string{"A"}, 50, ErrInvalidVoteCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SectionGoals(tt.rows, tt.members, []string{"A"}, tt.pct)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
