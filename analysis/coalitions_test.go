// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/censo-electoral/models"
)

func TestResolveCoalitionsPlurality(t *testing.T) {
	rows := []models.SectionRow{
		row(1, 101, "Centro", map[string]int64{"A": 100, "B": 50, "X": 120}),
		row(2, 102, "Centro", map[string]int64{"A": 10, "B": 20, "X": 90}),
	}
	coalitions := []models.Coalition{{ID: "c1", Name: "C1", Members: []string{"A", "B"}}}

	result, err := ResolveCoalitions(rows, coalitions, []string{"A", "B", "X"})
	if err != nil {
		t.Fatalf("ResolveCoalitions failed: %v", err)
	}

	if result.Sections[0].Winner != "c1" {
		t.Errorf("Expected c1 to win section 101, got %q", result.Sections[0].Winner)
	}
	if result.Sections[0].WinnerVotes != 150 {
		t.Errorf("Expected 150 winning votes, got %d", result.Sections[0].WinnerVotes)
	}
	if result.Sections[1].Winner != "X" {
		t.Errorf("Expected X to win section 102, got %q", result.Sections[1].Winner)
	}

	if len(result.Coalitions) != 1 {
		t.Fatalf("Expected 1 coalition standing, got %d", len(result.Coalitions))
	}
	c1 := result.Coalitions[0]
	if c1.SectionsWon != 1 || c1.TotalVotes != 180 {
		t.Errorf("Expected c1 with 1 section and 180 votes, got %d and %d", c1.SectionsWon, c1.TotalVotes)
	}
	assertFloat(t, "c1 win percentage", c1.WinPercentage, 50)
	assertFloat(t, "c1 vote share", c1.VoteShare, 180.0/390*100)

	if !reflect.DeepEqual(result.UnusedParties, []string{"X"}) {
		t.Errorf("Expected unused parties [X], got %v", result.UnusedParties)
	}
	if len(result.Parties) != 1 || result.Parties[0].Kind != models.KindParty || result.Parties[0].TotalVotes != 210 {
		t.Errorf("Unexpected standalone parties: %+v", result.Parties)
	}
	if result.TotalVotes != 390 {
		t.Errorf("Expected 390 total votes, got %d", result.TotalVotes)
	}
}

func TestResolveCoalitionsPartition(t *testing.T) {
	rows := []models.SectionRow{
		row(1, 1, "Centro", map[string]int64{"A": 5, "B": 7, "C": 3, "D": 9}),
		row(2, 2, "Norte", map[string]int64{"A": 11, "C": 2}),
		row(3, 3, "Sur", map[string]int64{"D": 4}),
	}
	coalitions := []models.Coalition{
		{ID: "ab", Name: "AB", Members: []string{"A", "B"}},
		{ID: "c", Name: "C", Members: []string{"C"}},
	}

	result, err := ResolveCoalitions(rows, coalitions, []string{"A", "B", "C", "D"})
	if err != nil {
		t.Fatalf("ResolveCoalitions failed: %v", err)
	}

	// every party's votes land in exactly one entity
	var sum int64
	for _, s := range append(result.Coalitions, result.Parties...) {
		sum += s.TotalVotes
	}
	if sum != 41 || result.TotalVotes != 41 {
		t.Errorf("Expected 41 votes across entities, got %d (total %d)", sum, result.TotalVotes)
	}

	won := 0
	for _, s := range append(result.Coalitions, result.Parties...) {
		won += s.SectionsWon
	}
	if won != 3 {
		t.Errorf("Expected 3 sections won in total, got %d", won)
	}
}

func TestResolveCoalitionsTies(t *testing.T) {
	rows := []models.SectionRow{
		row(1, 1, "Centro", map[string]int64{"A": 50, "B": 50, "X": 100}),
		row(2, 2, "Centro", map[string]int64{}),
	}
	coalitions := []models.Coalition{{ID: "ab", Name: "AB", Members: []string{"A", "B"}}}

	result, err := ResolveCoalitions(rows, coalitions, []string{"A", "B", "X"})
	if err != nil {
		t.Fatalf("ResolveCoalitions failed: %v", err)
	}

	tied := result.Sections[0]
	if tied.Winner != "ab" {
		t.Errorf("Expected first declared entity to win the tie, got %q", tied.Winner)
	}
	if !tied.Tied || !reflect.DeepEqual(tied.TiedWith, []string{"X"}) {
		t.Errorf("Expected tie with X, got tied=%v with %v", tied.Tied, tied.TiedWith)
	}

	empty := result.Sections[1]
	if empty.Winner != "" || empty.Tied {
		t.Errorf("Expected no winner in an empty section, got %q (tied=%v)", empty.Winner, empty.Tied)
	}
	if result.Coalitions[0].SectionsWon+result.Parties[0].SectionsWon != 1 {
		t.Error("Expected exactly one section to be won")
	}
}

func TestResolveCoalitionsErrors(t *testing.T) {
	rows := []models.SectionRow{row(1, 1, "Centro", map[string]int64{"A": 1})}
	parties := []string{"A", "B", "C"}

	tests := []struct {
		name       string
		rows       []models.SectionRow
		coalitions []models.Coalition
		wantErr    error
	}{
		{
			name: "overlapping members",
			rows: rows,
			coalitions: []models.Coalition{
				{ID: "1", Name: "Uno", Members: []string{"A", "B"}},
				{ID: "2", Name: "Dos", Members: []string{"B"}},
			},
			wantErr: ErrOverlappingCoalition,
		},
		{
			name:       "empty coalition",
			rows:       rows,
			coalitions: []models.Coalition{{ID: "1", Name: "Uno", Members: []string{" "}}},
			wantErr:    ErrInvalidCoalition,
		},
		{
			name:       "blank name",
			rows:       rows,
			coalitions: []models.Coalition{{ID: "1", Name: "  ", Members: []string{"A"}}},
			wantErr:    ErrInvalidCoalition,
		},
		{
			name: "duplicate id",
			rows: rows,
			coalitions: []models.Coalition{
				{ID: "1", Name: "Uno", Members: []string{"A"}},
				{ID: "1", Name: "Dos", Members: []string{"B"}},
			},
			wantErr: ErrInvalidCoalition,
		},
		{
			name:       "id collides with party",
			rows:       rows,
			coalitions: []models.Coalition{{ID: "C", Name: "Uno", Members: []string{"A"}}},
			wantErr:    ErrInvalidCoalition,
		},
		{
			name:       "negative tally",
			rows:       []models.SectionRow{row(1, 1, "Centro", map[string]int64{"A": -1})},
			coalitions: []models.Coalition{{ID: "1", Name: "Uno", Members: []string{"A"}}},
			wantErr:    ErrInvalidVoteCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ResolveCoalitions(tt.rows, tt.coalitions, parties)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if result != nil {
				t.Error("Expected no result on error")
			}
		})
	}
}

func TestNormalizeCoalitions(t *testing.T) {
	t.Run("names every overlapping code", func(t *testing.T) {
		_, err := NormalizeCoalitions([]models.Coalition{
			{Name: "Uno", Members: []string{"PAN", "PRI"}},
			{Name: "Dos", Members: []string{"PRI", "PAN"}},
			{Name: "Tres", Members: []string{"PRI"}},
		})
		var overlap *OverlappingCoalitionError
		if !errors.As(err, &overlap) {
			t.Fatalf("Expected *OverlappingCoalitionError, got %v", err)
		}
		if !reflect.DeepEqual(overlap.Codes, []string{"PAN", "PRI"}) {
			t.Errorf("Expected codes [PAN PRI], got %v", overlap.Codes)
		}
	})

	t.Run("cleans input and generates ids", func(t *testing.T) {
		out, err := NormalizeCoalitions([]models.Coalition{
			{Name: " Uno ", Members: []string{" A", "A", "B "}, Color: "#123456"},
		})
		if err != nil {
			t.Fatalf("NormalizeCoalitions failed: %v", err)
		}
		c := out[0]
		if c.Name != "Uno" {
			t.Errorf("Expected trimmed name, got %q", c.Name)
		}
		if !reflect.DeepEqual(c.Members, []string{"A", "B"}) {
			t.Errorf("Expected members [A B], got %v", c.Members)
		}
		if _, err := uuid.Parse(c.ID); err != nil {
			t.Errorf("Expected a generated uuid, got %q", c.ID)
		}
		if c.Color != "#123456" {
			t.Errorf("Expected color to be kept, got %q", c.Color)
		}
	})

	t.Run("does not modify input", func(t *testing.T) {
		in := []models.Coalition{{Name: "Uno", Members: []string{"B", " A "}}}
		if _, err := NormalizeCoalitions(in); err != nil {
			t.Fatalf("NormalizeCoalitions failed: %v", err)
		}
		if in[0].ID != "" || in[0].Members[1] != " A " {
			t.Errorf("Input was modified: %+v", in[0])
		}
	})
}

func TestDefaultCoalitionsAreDisjoint(t *testing.T) {
	if _, err := NormalizeCoalitions(DefaultCoalitions()); err != nil {
		t.Fatalf("Default coalitions are invalid: %v", err)
	}

	a := DefaultCoalitions()
	a[0].Members[0] = "CHANGED"
	if DefaultCoalitions()[0].Members[0] != "PAN" {
		t.Error("Expected a fresh copy on every call")
	}
}

func TestUnusedParties(t *testing.T) {
	coalitions := []models.Coalition{{Members: []string{"B"}}}
	got := UnusedParties(coalitions, []string{"C", "B", "A", "C"})
	if !reflect.DeepEqual(got, []string{"C", "A"}) {
		t.Errorf("Expected [C A], got %v", got)
	}
}
