// Copyright (c) 2026 Sam Ritter.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/samritter/scorekeep/cliparse"
	"github.com/samritter/scorekeep/db"
	"github.com/samritter/scorekeep/models"
)

// SetupTestDB creates a fresh sqlite database under t.TempDir with the full
// schema applied.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scorekeep-test.db")
	conn, err := db.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration. AdminKey is left
// empty so admin routes are open; tests for the guard set it explicitly.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		DatabaseURL:  "scorekeep-test.db",
		DatabaseType: "sqlite",
	}
}

// InsertTestGame writes a game document directly into the database,
// bypassing the store.
func InsertTestGame(t *testing.T, conn *sql.DB, g models.Game) {
	t.Helper()

	doc, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("Failed to marshal test game: %v", err)
	}

	now := time.Now().UTC()
	_, err = conn.Exec(`
		INSERT INTO game (code, doc, last_played, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, g.Code, string(doc), g.Sessions[len(g.Sessions)-1].Date, now, now)
	if err != nil {
		t.Fatalf("Failed to insert test game: %v", err)
	}
}

// NewTestGame builds a single-session game document for seeding.
func NewTestGame(code string, lastPlayed time.Time, scores map[string]int) models.Game {
	players := make([]string, 0, len(scores))
	for name := range scores {
		players = append(players, name)
	}
	return models.Game{
		Code:    code,
		Players: players,
		Sessions: []models.Session{{
			Date:   lastPlayed,
			Scores: scores,
		}},
	}
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
