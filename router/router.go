// Copyright (c) 2026 Sam Ritter.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/samritter/scorekeep/cliparse"
	"github.com/samritter/scorekeep/handlers"
	"github.com/samritter/scorekeep/metrics"
	"github.com/samritter/scorekeep/middleware"
	"github.com/samritter/scorekeep/static"
	"github.com/samritter/scorekeep/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, rec *metrics.Recorder) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize store and handlers
	gameStore := store.New(db, cfg.DatabaseType)
	gameHandler := handlers.NewGameHandler(gameStore)
	adminHandler := handlers.NewAdminHandler(gameStore, cfg)

	wrap := func(path string, h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(rec.Instrument(path, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Metrics scrape endpoint
	mux.Handle("GET /metrics", rec.Handler())

	// Game operations
	mux.HandleFunc("POST /api/join", wrap("/api/join", gameHandler.Join))
	mux.HandleFunc("POST /api/score", wrap("/api/score", gameHandler.UpdateScore))
	mux.HandleFunc("POST /api/new-session", wrap("/api/new-session", gameHandler.NewSession))
	mux.HandleFunc("GET /api/game/{code}", wrap("/api/game/{code}", gameHandler.GetGame))
	mux.HandleFunc("GET /api/games", wrap("/api/games", gameHandler.ListGames))

	// Admin operations
	mux.HandleFunc("GET /api/admin/games", wrap("/api/admin/games", adminHandler.ListGames))
	mux.HandleFunc("POST /api/admin/update-score", wrap("/api/admin/update-score", adminHandler.SetScore))

	// Unmatched GET routes fall back to the static entry page
	mux.Handle("GET /", static.Handler())

	return mux
}
