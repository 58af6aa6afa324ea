package models

import "time"

// Domain types

// Session is one scoring round within a game: a per-player integer
// score snapshot dated at creation.
type Session struct {
	Date   time.Time      `json:"date"`
	Scores map[string]int `json:"scores"`
}

// Game is a named (by code) collection of players and their session
// history. Sessions are append-only; the last one is the current session.
type Game struct {
	Code     string    `json:"code"`
	Players  []string  `json:"players"`
	Sessions []Session `json:"sessions"`
}

// CurrentSession returns the last session, the target of ordinary score
// updates. Games always hold at least one session.
func (g *Game) CurrentSession() *Session {
	return &g.Sessions[len(g.Sessions)-1]
}

// LastPlayed returns the date of the current session.
func (g *Game) LastPlayed() time.Time {
	return g.Sessions[len(g.Sessions)-1].Date
}

// GameSummary is the projection returned by game listings.
type GameSummary struct {
	Code       string    `json:"code"`
	Players    []string  `json:"players"`
	LastPlayed time.Time `json:"lastPlayed"`
}

// Request types

type JoinRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Delta defaults to +1 when absent or zero.
type UpdateScoreRequest struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Delta int    `json:"delta"`
}

type NewSessionRequest struct {
	Code string `json:"code"`
}

// SessionIndex is zero-based into the game's session list.
type AdminSetScoreRequest struct {
	Code         string `json:"code"`
	SessionIndex int    `json:"sessionIndex"`
	Player       string `json:"player"`
	NewScore     int    `json:"newScore"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
