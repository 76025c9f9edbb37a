// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line flag and environment configuration.

Flags take precedence over environment variables:

	-p          / PORT            server port (default 8000)
	-d          / DATABASE_URL    database connection string (required)
	-t          / DATABASE_TYPE   "postgres" (default) or "sqlite"
	-token-ttl  / TOKEN_TTL_HOURS access token lifetime (default 24)
	-jwt-secret / JWT_SECRET      token signing secret (required; prefer env)

main loads a .env file (if present) before calling ParseFlags, so local
development only needs a .env with DATABASE_URL and JWT_SECRET.
*/
package cliparse
