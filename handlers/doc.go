// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the PollPro API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - PollHandler: poll lifecycle (create, get, update, delete, list)
  - VoteHandler: vote casting and retraction
  - ResultsHandler: result aggregation and category listing
  - UserHandler: registration, login, current-user lookup
  - AdminHandler: privileged user/poll/vote management

Handlers are created via constructor functions that accept *sql.DB and
Config:

	pollHandler := handlers.NewPollHandler(db, cfg)

# Request Flow

Middleware extracts the caller's identity from the bearer token; handlers
read it with middleware.IdentityFrom, check the access policy
(polls.Allow), and call into the domain packages. Domain errors come back
as sentinel kinds and are translated exactly once by writeDomainError:

	polls.ErrValidation / ErrExpired / ErrDuplicateVote /
	ErrInvalidOption / ErrNoVote → 400
	polls.ErrPermission           → 403
	polls.ErrNotFound             → 404
	anything else                 → 500 (logged)

Missing or invalid tokens on caller-only routes produce 401, which keeps
"not logged in" distinguishable from "logged in but forbidden" (403).

# Voting Flow

	POST   /polls/{id}/vote → CastVote (body: option_id)
	DELETE /polls/{id}/vote → RetractVote

Casting requires an active poll, an option belonging to that poll, and no
prior vote by the caller; retraction requires an active poll and an
existing vote.
*/
package handlers
