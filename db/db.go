// Copyright (c) 2026 Sam Ritter.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database. dbType is "sqlite" or
// "postgres"; dsn is a sqlite path or postgres connection URL.
func Open(dbType, dsn string) (*sql.DB, error) {
	switch dbType {
	case "sqlite":
		return sql.Open("sqlite", dsn)
	case "postgres":
		return sql.Open("postgres", dsn)
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
}

// Rebind rewrites ? placeholders into $1, $2, ... for postgres.
// Queries are written with ? and rebound per driver.
func Rebind(dbType, query string) string {
	if dbType != "postgres" {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
