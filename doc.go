// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the PollPro API server.

PollPro is a polling backend: users register, create polls with two or
more options in a fixed set of categories, cast a single vote per poll,
retract votes while a poll is active, and view aggregated results. Admins
manage users, polls, and votes directly.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 8000 -d "postgres://..." -jwt-secret "..."

A .env file in the working directory is loaded automatically.

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string
  - JWT_SECRET (-jwt-secret): access token signing secret

Optional settings:

  - PORT (-p): server port (default: 8000)
  - DATABASE_TYPE (-t): "postgres" (default) or "sqlite"
  - TOKEN_TTL_HOURS (-token-ttl): access token lifetime (default: 24)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - polls: the voting core (entity manager, vote ledger, aggregator,
    access policy)
  - users: identity (registration, login, admin user management)
  - handlers: HTTP request handlers over the core packages
  - router: route definitions using Go 1.22+ routing
  - middleware: auth, CORS, logging, JSON helpers
  - models: domain and request/response types
  - auth: JWT and password primitives
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
