// Copyright (c) 2026 Sam Ritter.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics records Prometheus metrics for HTTP requests and serves
// the /metrics scrape endpoint. Handlers are wrapped via
// Recorder.Instrument with their route pattern as the path label.
package metrics
