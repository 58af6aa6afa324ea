// Copyright (c) 2026 Sam Ritter.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

The database acts as a document store: the game table holds one JSON document
per game, keyed by code, plus a denormalized last_played column for ordering
game listings. Both sqlite (modernc.org/sqlite, the default) and postgres
(lib/pq) are supported; queries are written with ? placeholders and rebound
for postgres via Rebind.
*/
package db
