// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Role constants, as issued in session tokens by the auth provider
type Role string

const (
	RoleSuper  Role = "SUPER_USER"
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
	RoleBasic  Role = "USER"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleSuper, RoleAdmin, RoleEditor, RoleBasic:
		return true
	}
	return false
}

// Polling station types
type StationType string

const (
	StationBasic         StationType = "BASICA"
	StationAdjacent      StationType = "CONTIGUA"
	StationExtraordinary StationType = "EXTRAORDINARIA"
	StationSpecial       StationType = "ESPECIAL"
)

// Goal types and statuses
const (
	GoalVotes      = "votes"
	GoalPercentage = "percentage"
	GoalSections   = "sections"

	GoalAchieved = "achieved"
	GoalOnTrack  = "on-track"
	GoalBehind   = "behind"
)

// Section goal statuses and priorities
const (
	SectionGoalReached = "reached"
	SectionGoalNear    = "near"
	SectionGoalFar     = "far"

	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Standing kinds
const (
	KindCoalition = "coalition"
	KindParty     = "party"
)

// Session is the verified caller identity
type Session struct {
	UserID          string
	Role            Role
	LocalDistrictID *int64
	MunicipalityID  *int64
}

// Domain types

type Party struct {
	ID    int64   `json:"id"`
	Code  string  `json:"siglas"`
	Name  string  `json:"nombre"`
	Color *string `json:"color"`
}

type PollingStation struct {
	ID               int64       `json:"id"`
	Number           string      `json:"numero"`
	Type             StationType `json:"tipo"`
	SectionID        int64       `json:"seccionId"`
	RegisteredVoters int64       `json:"listaNominal"`
	Latitude         *float64    `json:"latitud,omitempty"`
	Longitude        *float64    `json:"longitud,omitempty"`
}

// SectionRef is a section with its geographic ancestry
type SectionRef struct {
	ID                  int64
	Number              int
	MunicipalityID      int64
	MunicipalityName    string
	LocalDistrictID     *int64
	LocalDistrictName   string
	FederalDistrictID   *int64
	FederalDistrictName string
}

type VoteRecord struct {
	StationID int64
	Party     Party
	Count     int64
}

// StationVotes is one polling station joined with its votes and section
type StationVotes struct {
	Station PollingStation
	Section SectionRef
	Votes   []VoteRecord
}

// Coalition is an analyst-defined group of parties. It only lives for the
// duration of a request.
type Coalition struct {
	ID      string   `json:"id"`
	Name    string   `json:"nombre"`
	Members []string `json:"partidos"`
	Color   string   `json:"color,omitempty"`
}

// SectionRow is one section of the vote matrix: party code -> votes
type SectionRow struct {
	SectionID        int64
	Number           int
	Municipality     string
	District         string
	RegisteredVoters int64
	Votes            map[string]int64
}

type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

type SectionInfo struct {
	ID               int64 `json:"id"`
	Number           int   `json:"numero"`
	Municipality     Ref   `json:"municipio"`
	LocalDistrict    *Ref  `json:"distritoLocal"`
	FederalDistrict  *Ref  `json:"distritoFederal"`
	StationCount     int   `json:"casillas"`
	RegisteredVoters int64 `json:"listaNominal"`
}

// SectionRef returns the section's geographic ancestry
func (s SectionInfo) SectionRef() SectionRef {
	ref := SectionRef{
		ID:               s.ID,
		Number:           s.Number,
		MunicipalityID:   s.Municipality.ID,
		MunicipalityName: s.Municipality.Name,
	}
	if s.LocalDistrict != nil {
		id := s.LocalDistrict.ID
		ref.LocalDistrictID = &id
		ref.LocalDistrictName = s.LocalDistrict.Name
	}
	if s.FederalDistrict != nil {
		id := s.FederalDistrict.ID
		ref.FederalDistrictID = &id
		ref.FederalDistrictName = s.FederalDistrict.Name
	}
	return ref
}

// Aggregation result types

type PartyResult struct {
	Name       string  `json:"nombre"`
	Code       string  `json:"siglas"`
	Votes      int64   `json:"votos"`
	Percentage float64 `json:"porcentaje"`
	Color      *string `json:"color"`
}

type AreaResult struct {
	Name             string           `json:"nombre"`
	Votes            int64            `json:"votos"`
	RegisteredVoters int64            `json:"listaNominal"`
	Stations         int              `json:"casillas"`
	ByParty          map[string]int64 `json:"partidos"`
}

type CoalitionTotal struct {
	Votes      int64    `json:"votos"`
	Percentage float64  `json:"porcentaje"`
	Parties    []string `json:"partidos"`
}

type AggregationResult struct {
	TotalVotes            int64                     `json:"totalVotes"`
	TotalRegisteredVoters int64                     `json:"totalListaNominal"`
	TotalStations         int                       `json:"totalCasillas"`
	Turnout               float64                   `json:"participacion"`
	ByParty               []PartyResult             `json:"resultadosPorPartido"`
	ByDistrict            []AreaResult              `json:"resultadosPorDistrito"`
	ByMunicipality        []AreaResult              `json:"resultadosPorMunicipio"`
	Coalitions            map[string]CoalitionTotal `json:"coaliciones"`
}

// Coalition analysis types

type Standing struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Kind          string   `json:"kind"`
	Color         string   `json:"color,omitempty"`
	Members       []string `json:"members"`
	TotalVotes    int64    `json:"totalVotes"`
	VoteShare     float64  `json:"voteShare"`
	SectionsWon   int      `json:"sectionsWon"`
	WinPercentage float64  `json:"winPercentage"`
}

type SectionOutcome struct {
	SectionID    int64            `json:"sectionId"`
	Section      int              `json:"section"`
	Municipality string           `json:"municipality"`
	Winner       string           `json:"winner,omitempty"`
	WinnerVotes  int64            `json:"winnerVotes"`
	Tied         bool             `json:"tied"`
	TiedWith     []string         `json:"tiedWith,omitempty"`
	Votes        map[string]int64 `json:"votes"`
}

type CoalitionAnalysis struct {
	TotalSections int              `json:"totalSections"`
	TotalVotes    int64            `json:"totalVotes"`
	Coalitions    []Standing       `json:"coalitions"`
	Parties       []Standing       `json:"parties"`
	UnusedParties []string         `json:"unusedParties"`
	Sections      []SectionOutcome `json:"sections"`
}

// Coalition target types

type SectionTarget struct {
	Section          int     `json:"section"`
	Municipality     string  `json:"municipality"`
	TotalVotes       int64   `json:"totalVotes"`
	CoalitionVotes   int64   `json:"coalitionVotes"`
	TargetVotes      int64   `json:"targetVotes"`
	Percentage       float64 `json:"percentage"`
	TargetPercentage float64 `json:"targetPercentage"`
}

type TargetAnalysis struct {
	Members          []string        `json:"members"`
	TargetPercentage float64         `json:"targetPercentage"`
	TotalVotes       int64           `json:"totalVotes"`
	CoalitionVotes   int64           `json:"coalitionVotes"`
	TargetVotes      int64           `json:"targetVotes"`
	Sections         []SectionTarget `json:"sections"`
}

// Section goal types

type SectionGoal struct {
	Section      int     `json:"section"`
	Municipality string  `json:"municipality"`
	District     string  `json:"district"`
	TotalVotes   int64   `json:"totalVotes"`
	PartyVotes   int64   `json:"partyVotes"`
	CurrentShare float64 `json:"currentPercentage"`
	GoalVotes    int64   `json:"goalVotes"`
	Status       string  `json:"status"`
	Priority     string  `json:"priority"`
}

type SectionGoalsAnalysis struct {
	Parties         []string      `json:"parties"`
	GoalPercentage  float64       `json:"goalPercentage"`
	TotalSections   int           `json:"totalSections"`
	Reached         int           `json:"reached"`
	Near            int           `json:"near"`
	SuccessRate     float64       `json:"successRate"`
	TotalVotes      int64         `json:"totalVotes"`
	PartyVotes      int64         `json:"partyVotes"`
	GoalVotes       int64         `json:"goalVotes"`
	AverageShare    float64       `json:"averagePercentage"`
	AdditionalVotes int64         `json:"additionalVotes"`
	Sections        []SectionGoal `json:"sections"`
}

// Goal types

type Goal struct {
	Party       string  `json:"party"`
	Type        string  `json:"type"`
	Target      float64 `json:"target"`
	Description string  `json:"description"`
}

type GoalProgress struct {
	Goal
	Current  float64 `json:"current"`
	Progress float64 `json:"progress"`
	Status   string  `json:"status"`
}

// Party performance types

type SectionPerformance struct {
	Section          int     `json:"section"`
	Municipality     string  `json:"municipality"`
	District         string  `json:"district"`
	Winner           string  `json:"winner"`
	WinnerVotes      int64   `json:"winnerVotes"`
	RunnerUp         string  `json:"runnerUp"`
	RunnerUpVotes    int64   `json:"runnerUpVotes"`
	PartyVotes       int64   `json:"partyVotes"`
	PartyPosition    int     `json:"partyPosition"`
	TotalVotes       int64   `json:"totalVotes"`
	Margin           int64   `json:"margin"`
	MarginPercentage float64 `json:"marginPercentage"`
	IsWin            bool    `json:"isWin"`
	RegisteredVoters int64   `json:"registeredVoters"`
}

type MunicipalityPerformance struct {
	Municipality  string  `json:"municipality"`
	TotalSections int     `json:"totalSections"`
	SectionsWon   int     `json:"sectionsWon"`
	TotalVotes    int64   `json:"totalVotes"`
	WinPercentage float64 `json:"winPercentage"`
}

type PartyPerformance struct {
	Party            string                    `json:"party"`
	TotalSections    int                       `json:"totalSections"`
	SectionsWon      int                       `json:"sectionsWon"`
	SectionsLost     int                       `json:"sectionsLost"`
	WinPercentage    float64                   `json:"winPercentage"`
	PartyVotes       int64                     `json:"partyVotes"`
	TotalVotes       int64                     `json:"totalVotes"`
	VoteShare        float64                   `json:"voteShare"`
	AvgVictoryMargin float64                   `json:"avgVictoryMargin"`
	AvgDefeatMargin  float64                   `json:"avgDefeatMargin"`
	BestSections     []SectionPerformance      `json:"bestSections"`
	WorstSections    []SectionPerformance      `json:"worstSections"`
	ByMunicipality   []MunicipalityPerformance `json:"byMunicipality"`
	Sections         []SectionPerformance      `json:"sections"`
}

// Request types

type CoalitionRequest struct {
	Coalitions []Coalition `json:"coaliciones"`
}

type TargetRequest struct {
	Parties          []string `json:"partidos"`
	TargetPercentage float64  `json:"porcentajeObjetivo"`
}

type GoalsRequest struct {
	Goals []Goal `json:"metas"`
}

type SectionGoalsRequest struct {
	Parties        []string `json:"partidos"`
	GoalPercentage float64  `json:"porcentajeMeta"`
}

// Response types

type GoalsResponse struct {
	TotalVotes    int64          `json:"totalVotes"`
	TotalSections int            `json:"totalSections"`
	Goals         []GoalProgress `json:"goals"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}
