// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/danielhkuo/censo-electoral/models"
)

const topSections = 10

type partyVotes struct {
	code  string
	votes int64
}

// PartyPerformance analyses how one party did section by section: where it
// won, by how much, and where it was strongest and weakest.
func PartyPerformance(rows []models.SectionRow, parties []string, party string) (*models.PartyPerformance, error) {
	found := false
	for _, code := range parties {
		if code == party {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnknownParty, party)
	}
	if err := validateRows(rows); err != nil {
		return nil, err
	}

	result := &models.PartyPerformance{
		Party:         party,
		TotalSections: len(rows),
		Sections:      make([]models.SectionPerformance, 0, len(rows)),
	}

	var victoryMargins, defeatMargins []float64
	municipalities := make(map[string]*models.MunicipalityPerformance)
	var municipalityOrder []string

	for _, row := range rows {
		ranked := make([]partyVotes, 0, len(parties))
		for _, code := range parties {
			ranked = append(ranked, partyVotes{code: code, votes: row.Votes[code]})
		}
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].votes > ranked[j].votes
		})

		sp := models.SectionPerformance{
			Section:          row.Number,
			Municipality:     row.Municipality,
			District:         row.District,
			PartyVotes:       row.Votes[party],
			TotalVotes:       rowTotal(row.Votes, parties),
			RegisteredVoters: row.RegisteredVoters,
		}
		for i, pv := range ranked {
			if pv.code == party {
				sp.PartyPosition = i + 1
				break
			}
		}
		if len(ranked) > 0 && ranked[0].votes > 0 {
			sp.Winner = ranked[0].code
			sp.WinnerVotes = ranked[0].votes
		}
		if len(ranked) > 1 {
			sp.RunnerUp = ranked[1].code
			sp.RunnerUpVotes = ranked[1].votes
		}
		sp.Margin = sp.WinnerVotes - sp.RunnerUpVotes
		sp.MarginPercentage = percentage(sp.Margin, sp.TotalVotes)
		sp.IsWin = sp.Winner == party

		result.PartyVotes += sp.PartyVotes
		result.TotalVotes += sp.TotalVotes
		if sp.IsWin {
			result.SectionsWon++
			victoryMargins = append(victoryMargins, sp.MarginPercentage)
		} else {
			defeatMargins = append(defeatMargins, math.Abs(sp.MarginPercentage))
		}

		m, ok := municipalities[row.Municipality]
		if !ok {
			m = &models.MunicipalityPerformance{Municipality: row.Municipality}
			municipalities[row.Municipality] = m
			municipalityOrder = append(municipalityOrder, row.Municipality)
		}
		m.TotalSections++
		m.TotalVotes += sp.PartyVotes
		if sp.IsWin {
			m.SectionsWon++
		}
		m.WinPercentage = percentage(int64(m.SectionsWon), int64(m.TotalSections))

		result.Sections = append(result.Sections, sp)
	}

	result.SectionsLost = result.TotalSections - result.SectionsWon
	result.WinPercentage = percentage(int64(result.SectionsWon), int64(result.TotalSections))
	result.VoteShare = percentage(result.PartyVotes, result.TotalVotes)
	result.AvgVictoryMargin = mean(victoryMargins)
	result.AvgDefeatMargin = mean(defeatMargins)

	withVotes := make([]models.SectionPerformance, 0, len(result.Sections))
	for _, sp := range result.Sections {
		if sp.PartyVotes > 0 {
			withVotes = append(withVotes, sp)
		}
	}

	best := append([]models.SectionPerformance(nil), withVotes...)
	sort.SliceStable(best, func(i, j int) bool {
		return best[i].PartyVotes > best[j].PartyVotes
	})
	result.BestSections = limit(best, topSections)

	worst := append([]models.SectionPerformance(nil), withVotes...)
	sort.SliceStable(worst, func(i, j int) bool {
		return worst[i].PartyVotes < worst[j].PartyVotes
	})
	result.WorstSections = limit(worst, topSections)

	result.ByMunicipality = make([]models.MunicipalityPerformance, 0, len(municipalityOrder))
	for _, name := range municipalityOrder {
		result.ByMunicipality = append(result.ByMunicipality, *municipalities[name])
	}
	sort.SliceStable(result.ByMunicipality, func(i, j int) bool {
		return result.ByMunicipality[i].WinPercentage > result.ByMunicipality[j].WinPercentage
	})

	return result, nil
}

func limit(s []models.SectionPerformance, n int) []models.SectionPerformance {
	if s == nil {
		return []models.SectionPerformance{}
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}
