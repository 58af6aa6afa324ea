// Copyright (c) 2026 Sam Ritter.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package static embeds the entry page served for unmatched routes.
package static

import (
	"embed"
	"net/http"
)

//go:embed index.html
var files embed.FS

// Handler serves the embedded entry page. Any unmatched path falls back
// here so deep links into the frontend resolve.
func Handler() http.Handler {
	page, err := files.ReadFile("index.html")
	if err != nil {
		panic(err)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	})
}
