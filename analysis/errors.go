// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidVoteCount     = errors.New("invalid vote count")
	ErrOverlappingCoalition = errors.New("party assigned to more than one coalition")
	ErrInvalidCoalition     = errors.New("invalid coalition")
	ErrInvalidTarget        = errors.New("invalid target percentage")
	ErrInvalidGoal          = errors.New("invalid goal")
	ErrUnknownParty         = errors.New("unknown party")
)

// InvalidVoteCountError reports the first negative tally found
type InvalidVoteCountError struct {
	StationID int64
	SectionID int64
	PartyCode string
	Count     int64
}

func (e *InvalidVoteCountError) Error() string {
	if e.StationID != 0 {
		return fmt.Sprintf("invalid vote count %d for party %s at station %d", e.Count, e.PartyCode, e.StationID)
	}
	return fmt.Sprintf("invalid vote count %d for party %s in section %d", e.Count, e.PartyCode, e.SectionID)
}

func (e *InvalidVoteCountError) Is(target error) bool {
	return target == ErrInvalidVoteCount
}

// OverlappingCoalitionError names every party code claimed by two coalitions
type OverlappingCoalitionError struct {
	Codes []string
}

func (e *OverlappingCoalitionError) Error() string {
	return fmt.Sprintf("parties assigned to more than one coalition: %s", strings.Join(e.Codes, ", "))
}

func (e *OverlappingCoalitionError) Is(target error) bool {
	return target == ErrOverlappingCoalition
}
