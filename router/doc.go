// Copyright (c) 2026 Sam Ritter.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ method routing.

NewRouter wires handlers to routes with logging and metrics instrumentation
applied per route. Unmatched paths fall back to the embedded static entry
page; /health and /metrics are served unwrapped.
*/
package router
