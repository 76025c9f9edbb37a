// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Middleware

  - WithLogging: request start/completion logging via slog
  - RequireAuth: rejects requests without a valid bearer token (401) and
    injects the caller's models.Identity into the request context
  - OptionalAuth: injects the identity when a valid token is present,
    proceeds anonymously otherwise (used on public routes that enrich
    their response for authenticated callers)
  - CORS: cross-origin headers and preflight handling

Handlers read the identity back with IdentityFrom(r.Context()) and pass it
into core operations explicitly; no core code touches the request context.

# Helpers

  - JSONResponse: encode and write a JSON body with a status code
  - ErrorResponse: write a structured {error, message} failure body
  - ParseJSONBody: decode a request body into a struct
*/
package middleware
