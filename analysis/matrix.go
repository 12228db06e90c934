// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

import (
	"github.com/danielhkuo/censo-electoral/models"
)

// SectionMatrix folds stations into one row per section, in the order the
// sections are first seen. Votes are summed per party code and roll sizes
// per section.
func SectionMatrix(stations []models.StationVotes) ([]models.SectionRow, error) {
	rows := []models.SectionRow{}
	index := make(map[int64]int)

	for _, sv := range stations {
		i, ok := index[sv.Section.ID]
		if !ok {
			i = len(rows)
			index[sv.Section.ID] = i
			rows = append(rows, models.SectionRow{
				SectionID:    sv.Section.ID,
				Number:       sv.Section.Number,
				Municipality: sv.Section.MunicipalityName,
				District:     districtName(sv.Section),
				Votes:        make(map[string]int64),
			})
		}

		row := &rows[i]
		row.RegisteredVoters += sv.Station.RegisteredVoters

		for _, v := range sv.Votes {
			if v.Count < 0 {
				return nil, &InvalidVoteCountError{StationID: sv.Station.ID, SectionID: sv.Section.ID, PartyCode: v.Party.Code, Count: v.Count}
			}
			row.Votes[v.Party.Code] += v.Count
		}
	}

	return rows, nil
}

// validateRows rejects any negative tally in a section matrix
func validateRows(rows []models.SectionRow) error {
	for _, row := range rows {
		for code, n := range row.Votes {
			if n < 0 {
				return &InvalidVoteCountError{SectionID: row.SectionID, PartyCode: code, Count: n}
			}
		}
	}
	return nil
}
