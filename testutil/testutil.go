// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/censo-electoral/auth"
	"github.com/danielhkuo/censo-electoral/cliparse"
	"github.com/danielhkuo/censo-electoral/db"
	"github.com/danielhkuo/censo-electoral/models"
)

// TestDBURL is the connection string for the test database
const TestDBURL = ":memory:"

// TestSessionSecret signs session tokens in tests
const TestSessionSecret = "test-session-secret"

// Geography created by CreateTestGeography
const (
	FederalDistrictID = 1

	LocalDistrictCentro = 1
	LocalDistrictNorte  = 2

	MunicipalityCentro = 1
	MunicipalityNorte  = 2

	// Sections 101 and 102 are in Centro, 201 is in Norte
	Section101 = 1
	Section102 = 2
	Section201 = 3
)

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// every connection to :memory: is its own database
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   TestDBURL,
		DatabaseType:  cliparse.DatabaseSQLite,
		SessionSecret: TestSessionSecret,
	}
}

// CreateTestGeography inserts two local districts, two municipalities and
// three sections under a single federal district
func CreateTestGeography(t *testing.T, conn *sql.DB) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO distrito_federal (id, numero, nombre) VALUES (1, 1, 'Distrito Federal 1');
		INSERT INTO distrito_local (id, numero, nombre) VALUES
			(1, 1, 'Distrito Local 1'),
			(2, 2, 'Distrito Local 2');
		INSERT INTO municipio (id, nombre) VALUES (1, 'Centro'), (2, 'Norte');
		INSERT INTO seccion (id, numero, municipio_id, distrito_local_id, distrito_federal_id) VALUES
			(1, 101, 1, 1, 1),
			(2, 102, 1, 1, 1),
			(3, 201, 2, 2, 1);
	`)
	if err != nil {
		t.Fatalf("Failed to create test geography: %v", err)
	}
}

// AddTestParty adds a party to the catalog
func AddTestParty(t *testing.T, conn *sql.DB, id int64, code, name string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO partido (id, siglas, nombre)
		VALUES (?, ?, ?)
	`, id, code, name)
	if err != nil {
		t.Fatalf("Failed to create test party: %v", err)
	}
}

// AddTestStation adds a basic polling station to a section
func AddTestStation(t *testing.T, conn *sql.DB, id, sectionID, registered int64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO casilla (id, numero, tipo, seccion_id, lista_nominal)
		VALUES (?, ?, 'BASICA', ?, ?)
	`, id, fmt.Sprintf("%dB", id), sectionID, registered)
	if err != nil {
		t.Fatalf("Failed to create test station: %v", err)
	}
}

// AddTestVote records a vote tally for a party at a station
func AddTestVote(t *testing.T, conn *sql.DB, stationID, partyID, count int64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO voto (casilla_id, partido_id, cantidad)
		VALUES (?, ?, ?)
	`, stationID, partyID, count)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// TestSession returns a session for role, restricted to the given
// jurisdiction when the ids are non-zero
func TestSession(role models.Role, localDistrictID, municipalityID int64) models.Session {
	s := models.Session{UserID: "test-user", Role: role}
	if localDistrictID != 0 {
		s.LocalDistrictID = &localDistrictID
	}
	if municipalityID != 0 {
		s.MunicipalityID = &municipalityID
	}
	return s
}

// TestSessionToken signs a session token with the test secret
func TestSessionToken(t *testing.T, session models.Session) string {
	t.Helper()

	token, err := auth.IssueSession(session, TestSessionSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to issue session token: %v", err)
	}
	return token
}

// AuthHeader returns the Authorization header for a token
func AuthHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
