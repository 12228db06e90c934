// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and the read queries behind the
analysis endpoints.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same statements run on postgres and sqlite.

# Tables

  - distrito_federal, distrito_local: electoral districts
  - municipio: municipalities
  - seccion: electoral sections
  - casilla: polling stations with their roll size (lista_nominal)
  - partido: party catalog
  - voto: one vote tally per station and party

# Relationships

	municipio 1──* seccion
	distrito_local 1──* seccion
	distrito_federal 1──* seccion
	seccion 1──* casilla
	casilla 1──* voto *──1 partido

# Queries

Store builds its SQL with goqu so the same query runs against either
dialect:

	store := db.NewStore(conn, cfg.Dialect())
	stations, err := store.FetchStations(ctx, predicate)

Every read takes an access.Predicate; jurisdiction ids and search filters
become WHERE conditions, so rows outside the caller's scope are never read.
*/
package db
