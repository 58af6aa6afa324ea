// Copyright (c) 2026 Sam Ritter.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types and request/response schemas for the
Scorekeep API.

# Domain Types

Game is the single persisted document type: a code, an ordered list of player
names (join order), and an append-only list of sessions. Session holds a date
and a player-name to integer score map. The last session is the "current"
session and is the target of ordinary score updates.

# Request Types

Request bodies are typed schemas validated at the handler boundary before any
store operation runs: required fields are checked explicitly and optional
fields carry documented defaults (UpdateScoreRequest.Delta defaults to +1).
*/
package models
