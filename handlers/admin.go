// Copyright (c) 2026 Sam Ritter.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/samritter/scorekeep/auth"
	"github.com/samritter/scorekeep/cliparse"
	"github.com/samritter/scorekeep/middleware"
	"github.com/samritter/scorekeep/models"
	"github.com/samritter/scorekeep/store"
)

type AdminHandler struct {
	store *store.GameStore
	cfg   cliparse.Config
}

func NewAdminHandler(s *store.GameStore, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: s, cfg: cfg}
}

// ListGames handles GET /api/admin/games
// Returns every game in full detail, no projection.
func (h *AdminHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), h.cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	games, err := h.store.AdminList()
	if err != nil {
		writeStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, games)
}

// SetScore handles POST /api/admin/update-score
// Overwrites a score in any session by index, bypassing the
// current-session-only restriction of the ordinary score update.
func (h *AdminHandler) SetScore(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), h.cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	var req models.AdminSetScoreRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "code is required")
		return
	}
	if req.Player == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "player is required")
		return
	}

	game, err := h.store.AdminSetScore(req.Code, req.SessionIndex, req.Player, req.NewScore)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("admin score override", "code", req.Code, "session", req.SessionIndex, "player", req.Player, "score", req.NewScore)

	middleware.JSONResponse(w, http.StatusOK, game)
}
