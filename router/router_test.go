// Copyright (c) 2026 Sam Ritter.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/samritter/scorekeep/metrics"
	"github.com/samritter/scorekeep/models"
	"github.com/samritter/scorekeep/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := NewRouter(db, testutil.GetTestConfig(), metrics.NewRecorder())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := NewRouter(db, testutil.GetTestConfig(), metrics.NewRecorder())

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestStaticFallback(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := NewRouter(db, testutil.GetTestConfig(), metrics.NewRecorder())

	// Unmatched routes serve the entry page
	for _, path := range []string{"/", "/game/ABCD", "/some/deep/link"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Expected status 200, got %d", w.Code)
			}
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("Expected HTML content type, got %q", ct)
			}
			if !strings.Contains(w.Body.String(), "Scorekeep") {
				t.Error("Expected entry page body")
			}
		})
	}
}

func TestRouteExistence(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := NewRouter(db, testutil.GetTestConfig(), metrics.NewRecorder())

	// Test that routes respond (handler is invoked)
	// 400/404 are valid handler responses; 405 means the route is missing
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/metrics"},

		{"POST", "/api/join"},
		{"POST", "/api/score"},
		{"POST", "/api/new-session"},
		{"GET", "/api/game/ABCD"},
		{"GET", "/api/games"},

		{"GET", "/api/admin/games"},
		{"POST", "/api/admin/update-score"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := NewRouter(db, testutil.GetTestConfig(), metrics.NewRecorder())

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},      // Only GET is defined
		{"PUT", "/api/score"},    // Only POST is defined
		{"DELETE", "/api/games"}, // Only GET is defined
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	testutil.InsertTestGame(t, db, testutil.NewTestGame("ABCD", time.Now().UTC(), map[string]int{"Alice": 2}))

	mux := NewRouter(db, testutil.GetTestConfig(), metrics.NewRecorder())

	req := httptest.NewRequest("GET", "/api/game/ABCD", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d. Body: %s", w.Code, w.Body.String())
	}

	var game models.Game
	testutil.AssertJSON(t, w, &game)
	if game.Code != "ABCD" {
		t.Errorf("Expected code ABCD extracted from path, got %q", game.Code)
	}
}
