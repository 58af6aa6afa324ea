// Copyright (c) 2026 Sam Ritter.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Scorekeep API server.

Scorekeep is a score-tracking service for multiplayer game sessions: clients
join a shared game by code, record per-player scores across a sequence of
sessions, and poll for updates.

# Starting the Server

The server reads configuration from environment variables (a .env file is
loaded when present) or CLI flags:

	DATABASE_URL=scorekeep.db go run main.go

Or with flags:

	go run main.go -p 3000 -d scorekeep.db

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_URL (-d): sqlite path or postgres URL (default: local scorekeep.db)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - ADMIN_KEY (-admin-key): when set, admin routes require the X-Admin-Key header

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: game document store (join, score, session, query operations)
  - handlers: HTTP request handlers (games, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - metrics: Prometheus request metrics
  - auth: Admin key validation
  - db: Database open and schema creation
  - cliparse: Configuration parsing
  - static: Embedded entry page for unmatched routes

See package documentation for each component.
*/
package main
