// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/censo-electoral/models"
)

// DefaultCoalitions returns the coalitions reported by the electoral results
// endpoint. A fresh slice is returned on every call.
func DefaultCoalitions() []models.Coalition {
	return []models.Coalition{
		{
			ID:      "va-por-mexico",
			Name:    "Va por México",
			Members: []string{"PAN", "PRI", "PRD", "PAN-PRI-PRD", "PAN-PRI", "PAN-PRD", "PRI-PRD"},
		},
		{
			ID:      "juntos-haremos-historia",
			Name:    "Juntos Haremos Historia",
			Members: []string{"MORENA", "PT", "PVEM", "PVEM-PT-MORENA", "PVEM-MORENA", "PT-MORENA", "PVEM-PT"},
		},
		{
			ID:      "movimiento-ciudadano",
			Name:    "Movimiento Ciudadano",
			Members: []string{"MC"},
		},
	}
}

// NormalizeCoalitions validates a coalition set and returns a cleaned copy:
// names and codes trimmed, duplicate codes inside one coalition dropped, and
// missing ids generated. A code claimed by two coalitions is an
// *OverlappingCoalitionError naming every such code.
func NormalizeCoalitions(coalitions []models.Coalition) ([]models.Coalition, error) {
	out := make([]models.Coalition, 0, len(coalitions))
	owner := make(map[string]string)
	ids := make(map[string]bool)
	names := make(map[string]bool)
	var overlaps []string

	for i, c := range coalitions {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: coalition %d has no name", ErrInvalidCoalition, i+1)
		}
		if names[name] {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidCoalition, name)
		}
		names[name] = true

		id := strings.TrimSpace(c.ID)
		if id == "" {
			id = uuid.NewString()
		}
		if ids[id] {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCoalition, id)
		}
		ids[id] = true

		seen := make(map[string]bool)
		members := make([]string, 0, len(c.Members))
		for _, code := range c.Members {
			code = strings.TrimSpace(code)
			if code == "" || seen[code] {
				continue
			}
			seen[code] = true

			if prev, ok := owner[code]; ok && prev != id {
				overlaps = append(overlaps, code)
				continue
			}
			owner[code] = id
			members = append(members, code)
		}
		if len(seen) == 0 {
			return nil, fmt.Errorf("%w: coalition %q has no parties", ErrInvalidCoalition, name)
		}

		out = append(out, models.Coalition{ID: id, Name: name, Members: members, Color: c.Color})
	}

	if len(overlaps) > 0 {
		sort.Strings(overlaps)
		return nil, &OverlappingCoalitionError{Codes: dedupe(overlaps)}
	}

	return out, nil
}

// UnusedParties returns the known codes that belong to no coalition, in the
// order they were given.
func UnusedParties(coalitions []models.Coalition, parties []string) []string {
	used := make(map[string]bool)
	for _, c := range coalitions {
		for _, code := range c.Members {
			used[code] = true
		}
	}

	unused := []string{}
	seen := make(map[string]bool)
	for _, code := range parties {
		if used[code] || seen[code] {
			continue
		}
		seen[code] = true
		unused = append(unused, code)
	}
	return unused
}

// entity is one competitor in a section: a coalition or a standalone party
type entity struct {
	standing models.Standing
	codes    []string
}

// ResolveCoalitions computes, for every section row, the plurality winner
// among the given coalitions and the parties outside them, and rolls the
// results up per coalition.
//
// Ties go to the entity declared first (coalitions in request order, then
// unused parties in known order); the section is flagged as tied and lists
// the tied entities. A section where every entity has zero votes has no
// winner.
func ResolveCoalitions(rows []models.SectionRow, coalitions []models.Coalition, parties []string) (*models.CoalitionAnalysis, error) {
	coalitions, err := NormalizeCoalitions(coalitions)
	if err != nil {
		return nil, err
	}
	if err := validateRows(rows); err != nil {
		return nil, err
	}

	unused := UnusedParties(coalitions, parties)
	for _, c := range coalitions {
		for _, code := range unused {
			if c.ID == code {
				return nil, fmt.Errorf("%w: id %q collides with party %s", ErrInvalidCoalition, c.ID, code)
			}
		}
	}

	entities := make([]*entity, 0, len(coalitions)+len(unused))
	for _, c := range coalitions {
		entities = append(entities, &entity{
			standing: models.Standing{
				ID:      c.ID,
				Name:    c.Name,
				Kind:    models.KindCoalition,
				Color:   c.Color,
				Members: append([]string(nil), c.Members...),
			},
			codes: c.Members,
		})
	}
	for _, code := range unused {
		entities = append(entities, &entity{
			standing: models.Standing{
				ID:      code,
				Name:    code,
				Kind:    models.KindParty,
				Members: []string{code},
			},
			codes: []string{code},
		})
	}

	result := &models.CoalitionAnalysis{
		TotalSections: len(rows),
		UnusedParties: unused,
		Sections:      make([]models.SectionOutcome, 0, len(rows)),
	}

	sums := make([]int64, len(entities))
	for _, row := range rows {
		outcome := models.SectionOutcome{
			SectionID:    row.SectionID,
			Section:      row.Number,
			Municipality: row.Municipality,
			Votes:        make(map[string]int64, len(entities)),
		}

		for i, e := range entities {
			var sum int64
			for _, code := range e.codes {
				sum += row.Votes[code]
			}
			sums[i] = sum
			e.standing.TotalVotes += sum
			result.TotalVotes += sum
			outcome.Votes[e.standing.ID] = sum
		}

		winner := -1
		for i := range entities {
			if sums[i] > 0 && (winner < 0 || sums[i] > sums[winner]) {
				winner = i
			}
		}

		if winner >= 0 {
			w := entities[winner]
			w.standing.SectionsWon++
			outcome.Winner = w.standing.ID
			outcome.WinnerVotes = sums[winner]

			for i, e := range entities {
				if i != winner && sums[i] == sums[winner] {
					outcome.Tied = true
					outcome.TiedWith = append(outcome.TiedWith, e.standing.ID)
				}
			}
		}

		result.Sections = append(result.Sections, outcome)
	}

	result.Coalitions = []models.Standing{}
	result.Parties = []models.Standing{}
	for _, e := range entities {
		e.standing.VoteShare = percentage(e.standing.TotalVotes, result.TotalVotes)
		e.standing.WinPercentage = percentage(int64(e.standing.SectionsWon), int64(len(rows)))

		if e.standing.Kind == models.KindCoalition {
			result.Coalitions = append(result.Coalitions, e.standing)
		} else {
			result.Parties = append(result.Parties, e.standing)
		}
	}

	byVotesDesc(result.Coalitions)
	byVotesDesc(result.Parties)

	return result, nil
}

func byVotesDesc(s []models.Standing) {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].TotalVotes > s[j].TotalVotes
	})
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	for _, s := range sorted {
		if len(out) == 0 || out[len(out)-1] != s {
			out = append(out, s)
		}
	}
	return out
}
