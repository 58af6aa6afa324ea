// Copyright (c) 2026 Sam Ritter.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the game store service: join, score, reset, and
query operations over game documents.

# Operations

	s := store.New(dbConn, cfg.DatabaseType)

	game, err := s.Join(code, name)          // create or add player
	game, err := s.UpdateScore(code, name, delta)
	game, err := s.NewSession(code)
	game, err := s.Get(code)                 // ErrNotFound when absent
	list, err := s.List()                    // summaries, newest first
	games, err := s.AdminList()              // full documents
	game, err := s.AdminSetScore(code, idx, player, score)

# Persistence Model

Each operation is a single read-modify-write of one document identified by
code: fetch the JSON document, mutate the in-memory Game, write the whole
document back. There is no optimistic concurrency token, so two concurrent
updates to the same code can lose one update (last write wins). This is the
accepted consistency model, not a bug.

# Errors

ErrNotFound and ErrSessionNotFound are sentinel errors checked with
errors.Is; anything else is a storage failure surfaced to the caller.
*/
package store
