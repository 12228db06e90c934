// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/danielhkuo/censo-electoral/access"
	"github.com/danielhkuo/censo-electoral/models"
)

var ErrNotFound = errors.New("not found")

// Store is the read-only query layer over the electoral census tables
type Store struct {
	conn    *sql.DB
	dialect goqu.DialectWrapper
}

// NewStore wraps an open connection. dialect is a goqu dialect name,
// "postgres" or "sqlite3".
func NewStore(conn *sql.DB, dialect string) *Store {
	return &Store{
		conn:    conn,
		dialect: goqu.Dialect(dialect),
	}
}

// whereClause turns an access predicate into SQL conditions. Only
// non-empty filters are added.
func whereClause(p access.Predicate) []exp.Expression {
	var where []exp.Expression

	if p.LocalDistrictID != nil {
		where = append(where, SectionTableLocalDistrictCol.Eq(*p.LocalDistrictID))
	}
	if p.MunicipalityID != nil {
		where = append(where, SectionTableMunicipalityIDCol.Eq(*p.MunicipalityID))
	}
	if p.FederalDistrict != "" {
		where = append(where, FederalDistrictTableNameCol.Eq(p.FederalDistrict))
	}
	if p.LocalDistrict != "" {
		where = append(where, LocalDistrictTableNameCol.Eq(p.LocalDistrict))
	}
	if p.Municipality != "" {
		where = append(where, MunicipalityTableNameCol.Eq(p.Municipality))
	}
	if p.SectionNumber != nil {
		where = append(where, SectionTableNumberCol.Eq(*p.SectionNumber))
	}

	return where
}

// sectionGeography joins a dataset rooted at seccion with its ancestry
func sectionGeography(ds *goqu.SelectDataset) *goqu.SelectDataset {
	return ds.
		InnerJoin(MunicipalityTable, goqu.On(MunicipalityTableIDCol.Eq(SectionTableMunicipalityIDCol))).
		LeftJoin(LocalDistrictTable, goqu.On(LocalDistrictTableIDCol.Eq(SectionTableLocalDistrictCol))).
		LeftJoin(FederalDistrictTable, goqu.On(FederalDistrictTableIDCol.Eq(SectionTableFederalDistrictCol)))
}

// FetchStations returns every polling station matching the predicate with
// its votes and geographic ancestry, ordered by station id. Stations without
// vote rows are included with no votes.
func (s *Store) FetchStations(ctx context.Context, p access.Predicate) ([]models.StationVotes, error) {
	ds := s.dialect.From(StationTable).
		InnerJoin(SectionTable, goqu.On(SectionTableIDCol.Eq(StationTableSectionIDCol)))
	ds = sectionGeography(ds).
		LeftJoin(VoteTable, goqu.On(VoteTableStationCol.Eq(StationTableIDCol))).
		LeftJoin(PartyTable, goqu.On(PartyTableIDCol.Eq(VoteTablePartyCol))).
		Select(
			StationTableIDCol,
			StationTableNumberCol,
			StationTableTypeCol,
			goqu.COALESCE(StationTableRegisteredCol, goqu.L("0")),
			StationTableLatitudeCol,
			StationTableLongitudeCol,
			SectionTableIDCol,
			SectionTableNumberCol,
			MunicipalityTableIDCol,
			MunicipalityTableNameCol,
			LocalDistrictTableIDCol,
			LocalDistrictTableNameCol,
			FederalDistrictTableIDCol,
			FederalDistrictTableNameCol,
			PartyTableIDCol,
			PartyTableCodeCol,
			PartyTableNameCol,
			PartyTableColorCol,
			VoteTableCountCol,
		).
		Order(StationTableIDCol.Asc(), PartyTableIDCol.Asc())

	if where := whereClause(p); len(where) > 0 {
		ds = ds.Where(where...)
	}

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build station query: %w", err)
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	stations := []models.StationVotes{}
	for rows.Next() {
		var (
			station            models.PollingStation
			section            models.SectionRef
			stationType        string
			lat, lng           sql.NullFloat64
			localID, federalID sql.NullInt64
			localName, fedName sql.NullString
			partyID            sql.NullInt64
			code, name, color  sql.NullString
			count              sql.NullInt64
		)

		err := rows.Scan(
			&station.ID, &station.Number, &stationType, &station.RegisteredVoters, &lat, &lng,
			&section.ID, &section.Number, &section.MunicipalityID, &section.MunicipalityName,
			&localID, &localName, &federalID, &fedName,
			&partyID, &code, &name, &color, &count,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}

		if n := len(stations); n == 0 || stations[n-1].Station.ID != station.ID {
			station.Type = models.StationType(stationType)
			station.SectionID = section.ID
			station.Latitude = nullFloat(lat)
			station.Longitude = nullFloat(lng)
			section.LocalDistrictID = nullInt(localID)
			section.LocalDistrictName = localName.String
			section.FederalDistrictID = nullInt(federalID)
			section.FederalDistrictName = fedName.String

			stations = append(stations, models.StationVotes{Station: station, Section: section})
		}

		if !partyID.Valid {
			continue
		}
		current := &stations[len(stations)-1]
		current.Votes = append(current.Votes, models.VoteRecord{
			StationID: station.ID,
			Party: models.Party{
				ID:    partyID.Int64,
				Code:  code.String,
				Name:  name.String,
				Color: nullString(color),
			},
			Count: count.Int64,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stations: %w", err)
	}

	return stations, nil
}

// ListParties returns the party catalog ordered by id
func (s *Store) ListParties(ctx context.Context) ([]models.Party, error) {
	query, args, err := s.dialect.From(PartyTable).
		Select(PartyTableIDCol, PartyTableCodeCol, PartyTableNameCol, PartyTableColorCol).
		Order(PartyTableIDCol.Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build party query: %w", err)
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	defer rows.Close()

	parties := []models.Party{}
	for rows.Next() {
		var p models.Party
		var color sql.NullString
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &color); err != nil {
			return nil, fmt.Errorf("failed to scan party: %w", err)
		}
		p.Color = nullString(color)
		parties = append(parties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating parties: %w", err)
	}

	return parties, nil
}

// PartyCodes returns the party codes in catalog order
func (s *Store) PartyCodes(ctx context.Context) ([]string, error) {
	parties, err := s.ListParties(ctx)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(parties))
	for _, p := range parties {
		codes = append(codes, p.Code)
	}
	return codes, nil
}

// FindSection returns one section with its station count and roll size.
// Callers check the result against their predicate.
func (s *Store) FindSection(ctx context.Context, id int64) (*models.SectionInfo, error) {
	ds := sectionGeography(s.dialect.From(SectionTable)).
		LeftJoin(StationTable, goqu.On(StationTableSectionIDCol.Eq(SectionTableIDCol))).
		Select(
			SectionTableIDCol,
			SectionTableNumberCol,
			MunicipalityTableIDCol,
			MunicipalityTableNameCol,
			LocalDistrictTableIDCol,
			LocalDistrictTableNameCol,
			FederalDistrictTableIDCol,
			FederalDistrictTableNameCol,
			goqu.COUNT(StationTableIDCol),
			goqu.COALESCE(goqu.SUM(StationTableRegisteredCol), goqu.L("0")),
		).
		Where(SectionTableIDCol.Eq(id)).
		GroupBy(
			SectionTableIDCol,
			SectionTableNumberCol,
			MunicipalityTableIDCol,
			MunicipalityTableNameCol,
			LocalDistrictTableIDCol,
			LocalDistrictTableNameCol,
			FederalDistrictTableIDCol,
			FederalDistrictTableNameCol,
		)

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build section query: %w", err)
	}

	var (
		info               models.SectionInfo
		localID, federalID sql.NullInt64
		localName, fedName sql.NullString
	)
	err = s.conn.QueryRowContext(ctx, query, args...).Scan(
		&info.ID, &info.Number, &info.Municipality.ID, &info.Municipality.Name,
		&localID, &localName, &federalID, &fedName,
		&info.StationCount, &info.RegisteredVoters,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("section %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query section: %w", err)
	}

	if localID.Valid {
		info.LocalDistrict = &models.Ref{ID: localID.Int64, Name: localName.String}
	}
	if federalID.Valid {
		info.FederalDistrict = &models.Ref{ID: federalID.Int64, Name: fedName.String}
	}

	return &info, nil
}

func nullInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
