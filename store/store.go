// Copyright (c) 2026 Sam Ritter.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/samritter/scorekeep/db"
	"github.com/samritter/scorekeep/models"
)

var (
	ErrNotFound        = errors.New("game not found")
	ErrSessionNotFound = errors.New("session not found")
)

// GameStore exposes the game operations, backed by whole-document
// read-modify-write against the game table. Every mutation rewrites the
// full document; there is no field-level update and no dirty tracking.
//
// There is also no per-code mutual exclusion: concurrent writers to the
// same code can race, and the last write wins.
type GameStore struct {
	db     *sql.DB
	dbType string
}

// New constructs a GameStore over an open database handle.
// dbType selects placeholder rebinding ("sqlite" or "postgres").
func New(dbConn *sql.DB, dbType string) *GameStore {
	return &GameStore{db: dbConn, dbType: dbType}
}

// Get retrieves a game by code. Returns ErrNotFound when no game matches.
func (s *GameStore) Get(code string) (models.Game, error) {
	var raw string
	err := s.db.QueryRow(db.Rebind(s.dbType, `
		SELECT doc FROM game WHERE code = ?
	`), code).Scan(&raw)
	if err == sql.ErrNoRows {
		return models.Game{}, ErrNotFound
	}
	if err != nil {
		return models.Game{}, fmt.Errorf("query game: %w", err)
	}

	var g models.Game
	if err := json.Unmarshal([]byte(raw), &g); err != nil {
		return models.Game{}, fmt.Errorf("decode game %s: %w", code, err)
	}
	return g, nil
}

// Join adds a player to a game, creating the game when the code is unseen.
// A new game starts with one session holding the joining player at score 0.
// For an existing game the name is appended to players if not already
// present, and the current session gains a zero entry for the name unless
// one exists already (a returning player keeps their score).
func (s *GameStore) Join(code, name string) (models.Game, error) {
	g, err := s.Get(code)
	if errors.Is(err, ErrNotFound) {
		g = models.Game{
			Code:    code,
			Players: []string{name},
			Sessions: []models.Session{{
				Date:   time.Now().UTC(),
				Scores: map[string]int{name: 0},
			}},
		}
		if err := s.save(g); err != nil {
			return models.Game{}, err
		}
		return g, nil
	}
	if err != nil {
		return models.Game{}, err
	}

	if !slices.Contains(g.Players, name) {
		g.Players = append(g.Players, name)
	}
	cur := g.CurrentSession()
	if cur.Scores == nil {
		cur.Scores = map[string]int{}
	}
	if _, ok := cur.Scores[name]; !ok {
		cur.Scores[name] = 0
	}

	if err := s.save(g); err != nil {
		return models.Game{}, err
	}
	return g, nil
}

// UpdateScore adjusts a player's score in the current session by delta.
// A zero delta means the caller omitted it and is treated as +1. The name
// need not appear in players; a missing score entry starts from 0. Scores
// are unbounded and may go negative.
func (s *GameStore) UpdateScore(code, name string, delta int) (models.Game, error) {
	if delta == 0 {
		delta = 1
	}

	g, err := s.Get(code)
	if err != nil {
		return models.Game{}, err
	}

	cur := g.CurrentSession()
	if cur.Scores == nil {
		cur.Scores = map[string]int{}
	}
	cur.Scores[name] += delta

	if err := s.save(g); err != nil {
		return models.Game{}, err
	}
	return g, nil
}

// NewSession appends a session dated now, seeding a zero score for each
// player present at call time. Players joining later do not retroactively
// appear in earlier sessions.
func (s *GameStore) NewSession(code string) (models.Game, error) {
	g, err := s.Get(code)
	if err != nil {
		return models.Game{}, err
	}

	scores := make(map[string]int, len(g.Players))
	for _, name := range g.Players {
		scores[name] = 0
	}
	g.Sessions = append(g.Sessions, models.Session{
		Date:   time.Now().UTC(),
		Scores: scores,
	})

	if err := s.save(g); err != nil {
		return models.Game{}, err
	}
	return g, nil
}

// List returns a summary per game, ordered by last session date descending
// (most recently played first). Order among equal dates is unspecified.
func (s *GameStore) List() ([]models.GameSummary, error) {
	rows, err := s.db.Query(`
		SELECT doc FROM game ORDER BY last_played DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	summaries := []models.GameSummary{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		var g models.Game
		if err := json.Unmarshal([]byte(raw), &g); err != nil {
			return nil, fmt.Errorf("decode game: %w", err)
		}
		summaries = append(summaries, models.GameSummary{
			Code:       g.Code,
			Players:    g.Players,
			LastPlayed: g.LastPlayed(),
		})
	}
	return summaries, rows.Err()
}

// AdminList returns every game in full detail, no defined ordering.
func (s *GameStore) AdminList() ([]models.Game, error) {
	rows, err := s.db.Query(`SELECT doc FROM game`)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	games := []models.Game{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		var g models.Game
		if err := json.Unmarshal([]byte(raw), &g); err != nil {
			return nil, fmt.Errorf("decode game: %w", err)
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// AdminSetScore overwrites a player's score in the session at the given
// zero-based index, bypassing the current-session restriction. This is the
// escape hatch for correcting historical sessions. Returns
// ErrSessionNotFound when the index is out of range; the game is left
// unmodified.
func (s *GameStore) AdminSetScore(code string, sessionIndex int, player string, newScore int) (models.Game, error) {
	g, err := s.Get(code)
	if err != nil {
		return models.Game{}, err
	}

	if sessionIndex < 0 || sessionIndex >= len(g.Sessions) {
		return models.Game{}, ErrSessionNotFound
	}

	sess := &g.Sessions[sessionIndex]
	if sess.Scores == nil {
		sess.Scores = map[string]int{}
	}
	sess.Scores[player] = newScore

	if err := s.save(g); err != nil {
		return models.Game{}, err
	}
	return g, nil
}

// save writes the full game document back, inserting or replacing by code.
func (s *GameStore) save(g models.Game) error {
	doc, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("encode game %s: %w", g.Code, err)
	}

	now := time.Now().UTC()
	_, err = s.db.Exec(db.Rebind(s.dbType, `
		INSERT INTO game (code, doc, last_played, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (code) DO UPDATE SET
			doc = excluded.doc,
			last_played = excluded.last_played,
			updated_at = excluded.updated_at
	`), g.Code, string(doc), g.LastPlayed(), now, now)
	if err != nil {
		return fmt.Errorf("save game %s: %w", g.Code, err)
	}
	return nil
}
