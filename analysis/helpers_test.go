// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

import (
	"math"
	"testing"

	"github.com/danielhkuo/censo-electoral/models"
)

// station builds one polling station in the given section with party votes
func station(id int64, section models.SectionRef, registered int64, votes map[string]int64, order ...string) models.StationVotes {
	sv := models.StationVotes{
		Station: models.PollingStation{
			ID:               id,
			Number:           "B",
			Type:             models.StationBasic,
			SectionID:        section.ID,
			RegisteredVoters: registered,
		},
		Section: section,
	}
	if len(order) == 0 {
		for code := range votes {
			order = append(order, code)
		}
	}
	for _, code := range order {
		sv.Votes = append(sv.Votes, models.VoteRecord{
			StationID: id,
			Party:     models.Party{Code: code, Name: code},
			Count:     votes[code],
		})
	}
	return sv
}

func section(id int64, number int, municipality, district string) models.SectionRef {
	return models.SectionRef{
		ID:                id,
		Number:            number,
		MunicipalityID:    1,
		MunicipalityName:  municipality,
		LocalDistrictName: district,
	}
}

func row(id int64, number int, municipality string, votes map[string]int64) models.SectionRow {
	return models.SectionRow{
		SectionID:    id,
		Number:       number,
		Municipality: municipality,
		District:     "Distrito 1",
		Votes:        votes,
	}
}

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s: expected %v, got %v", name, want, got)
	}
}
