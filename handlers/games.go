// Copyright (c) 2026 Sam Ritter.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/samritter/scorekeep/middleware"
	"github.com/samritter/scorekeep/models"
	"github.com/samritter/scorekeep/store"
)

type GameHandler struct {
	store *store.GameStore
}

func NewGameHandler(s *store.GameStore) *GameHandler {
	return &GameHandler{store: s}
}

// Join handles POST /api/join
func (h *GameHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req models.JoinRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "code is required")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	game, err := h.store.Join(req.Code, req.Name)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("player joined", "code", req.Code, "name", req.Name)

	middleware.JSONResponse(w, http.StatusOK, game)
}

// UpdateScore handles POST /api/score
func (h *GameHandler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateScoreRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "code is required")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	game, err := h.store.UpdateScore(req.Code, req.Name, req.Delta)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, game)
}

// NewSession handles POST /api/new-session
func (h *GameHandler) NewSession(w http.ResponseWriter, r *http.Request) {
	var req models.NewSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "code is required")
		return
	}

	game, err := h.store.NewSession(req.Code)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("session started", "code", req.Code, "sessions", len(game.Sessions))

	middleware.JSONResponse(w, http.StatusOK, game)
}

// GetGame handles GET /api/game/{code}
// A missing game is not an error on this path: the response is a 200 with
// a JSON null body.
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "code is required")
		return
	}

	game, err := h.store.Get(code)
	if errors.Is(err, store.ErrNotFound) {
		middleware.JSONResponse(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		writeStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, game)
}

// ListGames handles GET /api/games
func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.store.List()
	if err != nil {
		writeStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, summaries)
}

// writeStoreError maps store errors onto HTTP responses: sentinel
// not-found errors become 404, anything else is a storage failure
// surfaced as a 500 with the underlying message.
func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrSessionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	slog.Error("store operation failed", "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
}
