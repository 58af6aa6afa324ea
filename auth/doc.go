// Copyright (c) 2026 Sam Ritter.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package auth validates the optional admin key guarding admin routes.
// The key is configured via ADMIN_KEY and supplied by clients in the
// X-Admin-Key header; when unconfigured, admin routes are open.
package auth
