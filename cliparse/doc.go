// Copyright (c) 2026 Sam Ritter.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles server configuration.

Configuration comes from two sources with clear precedence: environment
variables are parsed first (struct tags via caarlos0/env), then CLI flags
override whatever the environment provided.

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Settings:

  - PORT (-p): listen port, default 3000
  - DATABASE_URL (-d): sqlite path or postgres connection URL
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - ADMIN_KEY (-admin-key): optional key guarding admin routes

DATABASE_URL may be left empty; main falls back to a local sqlite file so a
missing database configuration never prevents startup.
*/
package cliparse
