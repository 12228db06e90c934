// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables read by the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The schema is written in the subset of SQL shared by postgres and sqlite
const schema = `
-- Federal districts
CREATE TABLE IF NOT EXISTS distrito_federal (
    id INTEGER PRIMARY KEY,
    numero INTEGER NOT NULL,
    nombre TEXT NOT NULL
);

-- Local districts
CREATE TABLE IF NOT EXISTS distrito_local (
    id INTEGER PRIMARY KEY,
    numero INTEGER NOT NULL,
    nombre TEXT NOT NULL
);

-- Municipalities
CREATE TABLE IF NOT EXISTS municipio (
    id INTEGER PRIMARY KEY,
    nombre TEXT NOT NULL,
    clave TEXT
);

-- Sections
CREATE TABLE IF NOT EXISTS seccion (
    id INTEGER PRIMARY KEY,
    numero INTEGER NOT NULL,
    municipio_id INTEGER NOT NULL REFERENCES municipio(id),
    distrito_local_id INTEGER REFERENCES distrito_local(id),
    distrito_federal_id INTEGER REFERENCES distrito_federal(id)
);

CREATE INDEX IF NOT EXISTS idx_seccion_municipio_id ON seccion(municipio_id);
CREATE INDEX IF NOT EXISTS idx_seccion_distrito_local_id ON seccion(distrito_local_id);

-- Polling stations
CREATE TABLE IF NOT EXISTS casilla (
    id INTEGER PRIMARY KEY,
    numero TEXT NOT NULL,
    tipo TEXT NOT NULL DEFAULT 'BASICA',
    seccion_id INTEGER NOT NULL REFERENCES seccion(id),
    lista_nominal INTEGER,
    latitud REAL,
    longitud REAL
);

CREATE INDEX IF NOT EXISTS idx_casilla_seccion_id ON casilla(seccion_id);

-- Parties
CREATE TABLE IF NOT EXISTS partido (
    id INTEGER PRIMARY KEY,
    siglas TEXT NOT NULL UNIQUE,
    nombre TEXT NOT NULL,
    color TEXT
);

-- Votes, one row per station and party
CREATE TABLE IF NOT EXISTS voto (
    id INTEGER PRIMARY KEY,
    casilla_id INTEGER NOT NULL REFERENCES casilla(id),
    partido_id INTEGER NOT NULL REFERENCES partido(id),
    cantidad INTEGER NOT NULL,
    UNIQUE (casilla_id, partido_id)
);

CREATE INDEX IF NOT EXISTS idx_voto_casilla_id ON voto(casilla_id);
`
