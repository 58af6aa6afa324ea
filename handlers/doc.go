// Copyright (c) 2026 Sam Ritter.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Scorekeep API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - GameHandler: join, score, session and query operations
  - AdminHandler: full listings and historical score overrides

Handlers validate typed request bodies at the boundary, call the store, and
translate store errors into status codes: not-found sentinels become 404,
anything else a 500 carrying the underlying message.

# Game Flow

	POST /api/join        → Join (creates the game on first join)
	POST /api/score       → UpdateScore (current session, delta default +1)
	POST /api/new-session → NewSession (zero scores for current players)
	GET  /api/game/{code} → GetGame (200 with null body when absent)
	GET  /api/games       → ListGames (summaries, most recently played first)

# Admin Flow

	GET  /api/admin/games        → ListGames (full documents)
	POST /api/admin/update-score → SetScore (any session, by index)

Admin operations require the X-Admin-Key header when ADMIN_KEY is configured.
*/
package handlers
