// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

import (
	"sort"

	"github.com/danielhkuo/censo-electoral/models"
)

// NoDistrict labels stations whose section has no local district
const NoDistrict = "Sin distrito local"

// areaTotals accumulates one district or municipality bucket
type areaTotals struct {
	order []string
	areas map[string]*models.AreaResult
}

func newAreaTotals() *areaTotals {
	return &areaTotals{areas: make(map[string]*models.AreaResult)}
}

func (a *areaTotals) get(name string) *models.AreaResult {
	area, ok := a.areas[name]
	if !ok {
		area = &models.AreaResult{Name: name, ByParty: make(map[string]int64)}
		a.areas[name] = area
		a.order = append(a.order, name)
	}
	return area
}

func (a *areaTotals) sorted() []models.AreaResult {
	out := make([]models.AreaResult, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, *a.areas[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Votes > out[j].Votes
	})
	return out
}

// Aggregate folds polling stations and their votes into electoral results:
// totals and turnout, and breakdowns by party, local district,
// municipality and coalition. It does no I/O and keeps no state between
// calls.
//
// A negative vote count aborts the whole run with an *InvalidVoteCountError.
// Lists are sorted by votes descending; equal votes keep the order in which
// they were first seen.
func Aggregate(stations []models.StationVotes, coalitions []models.Coalition) (*models.AggregationResult, error) {
	coalitions, err := NormalizeCoalitions(coalitions)
	if err != nil {
		return nil, err
	}

	// party code -> coalition name, built once before the pass
	membership := make(map[string]string)
	coalitionVotes := make(map[string]int64, len(coalitions))
	for _, c := range coalitions {
		coalitionVotes[c.Name] = 0
		for _, code := range c.Members {
			membership[code] = c.Name
		}
	}

	var totalVotes, totalRegistered int64
	var partyOrder []string
	parties := make(map[string]*models.PartyResult)
	districts := newAreaTotals()
	municipalities := newAreaTotals()

	for _, sv := range stations {
		registered := sv.Station.RegisteredVoters
		totalRegistered += registered

		district := districts.get(districtName(sv.Section))
		municipality := municipalities.get(sv.Section.MunicipalityName)
		district.RegisteredVoters += registered
		municipality.RegisteredVoters += registered
		district.Stations++
		municipality.Stations++

		for _, v := range sv.Votes {
			if v.Count < 0 {
				return nil, &InvalidVoteCountError{StationID: sv.Station.ID, SectionID: sv.Section.ID, PartyCode: v.Party.Code, Count: v.Count}
			}

			code := v.Party.Code
			totalVotes += v.Count

			party, ok := parties[code]
			if !ok {
				party = &models.PartyResult{Name: v.Party.Name, Code: code, Color: v.Party.Color}
				parties[code] = party
				partyOrder = append(partyOrder, code)
			}
			party.Votes += v.Count

			district.ByParty[code] += v.Count
			district.Votes += v.Count
			municipality.ByParty[code] += v.Count
			municipality.Votes += v.Count

			if name, ok := membership[code]; ok {
				coalitionVotes[name] += v.Count
			}
		}
	}

	result := &models.AggregationResult{
		TotalVotes:            totalVotes,
		TotalRegisteredVoters: totalRegistered,
		TotalStations:         len(stations),
		Turnout:               percentage(totalVotes, totalRegistered),
		ByParty:               make([]models.PartyResult, 0, len(partyOrder)),
		ByDistrict:            districts.sorted(),
		ByMunicipality:        municipalities.sorted(),
		Coalitions:            make(map[string]models.CoalitionTotal, len(coalitions)),
	}

	for _, code := range partyOrder {
		p := *parties[code]
		p.Percentage = percentage(p.Votes, totalVotes)
		result.ByParty = append(result.ByParty, p)
	}
	sort.SliceStable(result.ByParty, func(i, j int) bool {
		return result.ByParty[i].Votes > result.ByParty[j].Votes
	})

	for _, c := range coalitions {
		votes := coalitionVotes[c.Name]
		result.Coalitions[c.Name] = models.CoalitionTotal{
			Votes:      votes,
			Percentage: percentage(votes, totalVotes),
			Parties:    c.Members,
		}
	}

	return result, nil
}

func districtName(s models.SectionRef) string {
	if s.LocalDistrictName == "" {
		return NoDistrict
	}
	return s.LocalDistrictName
}
