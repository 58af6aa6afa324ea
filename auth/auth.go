// Copyright (c) 2026 Sam Ritter.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
)

var ErrInvalidAdminKey = errors.New("invalid admin key")

// ValidateAdminKey checks a provided key against the configured one using a
// constant-time comparison. An empty configured key disables the guard and
// always validates, so admin routes stay open unless ADMIN_KEY is set.
func ValidateAdminKey(provided, configured string) error {
	if configured == "" {
		return nil
	}
	if !hmac.Equal([]byte(provided), []byte(configured)) {
		return ErrInvalidAdminKey
	}
	return nil
}
