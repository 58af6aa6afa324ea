// Copyright (c) 2026 Sam Ritter.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared across handlers.

  - WithLogging: wraps a handler with structured request/completion logs,
    tagged with a per-request UUID
  - JSONResponse / ErrorResponse: JSON body writers
  - ParseJSONBody: request body decoding
  - CORS: cross-origin headers and preflight handling
*/
package middleware
