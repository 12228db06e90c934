// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "github.com/doug-martin/goqu/v9"

const (
	FederalDistrictTableName = "distrito_federal"
	LocalDistrictTableName   = "distrito_local"
	MunicipalityTableName    = "municipio"
	SectionTableName         = "seccion"
	StationTableName         = "casilla"
	PartyTableName           = "partido"
	VoteTableName            = "voto"
)

var (
	FederalDistrictTable        = goqu.T(FederalDistrictTableName)
	FederalDistrictTableIDCol   = FederalDistrictTable.Col("id")
	FederalDistrictTableNameCol = FederalDistrictTable.Col("nombre")

	LocalDistrictTable        = goqu.T(LocalDistrictTableName)
	LocalDistrictTableIDCol   = LocalDistrictTable.Col("id")
	LocalDistrictTableNameCol = LocalDistrictTable.Col("nombre")

	MunicipalityTable        = goqu.T(MunicipalityTableName)
	MunicipalityTableIDCol   = MunicipalityTable.Col("id")
	MunicipalityTableNameCol = MunicipalityTable.Col("nombre")

	SectionTable                   = goqu.T(SectionTableName)
	SectionTableIDCol              = SectionTable.Col("id")
	SectionTableNumberCol          = SectionTable.Col("numero")
	SectionTableMunicipalityIDCol  = SectionTable.Col("municipio_id")
	SectionTableLocalDistrictCol   = SectionTable.Col("distrito_local_id")
	SectionTableFederalDistrictCol = SectionTable.Col("distrito_federal_id")

	StationTable              = goqu.T(StationTableName)
	StationTableIDCol         = StationTable.Col("id")
	StationTableNumberCol     = StationTable.Col("numero")
	StationTableTypeCol       = StationTable.Col("tipo")
	StationTableSectionIDCol  = StationTable.Col("seccion_id")
	StationTableRegisteredCol = StationTable.Col("lista_nominal")
	StationTableLatitudeCol   = StationTable.Col("latitud")
	StationTableLongitudeCol  = StationTable.Col("longitud")

	PartyTable         = goqu.T(PartyTableName)
	PartyTableIDCol    = PartyTable.Col("id")
	PartyTableCodeCol  = PartyTable.Col("siglas")
	PartyTableNameCol  = PartyTable.Col("nombre")
	PartyTableColorCol = PartyTable.Col("color")

	VoteTable           = goqu.T(VoteTableName)
	VoteTableStationCol = VoteTable.Col("casilla_id")
	VoteTablePartyCol   = VoteTable.Col("partido_id")
	VoteTableCountCol   = VoteTable.Col("cantidad")
)
