// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Enumerations

Poll categories (value → label):

	TECH → Technology
	ENT  → Entertainment
	SPRT → Sports
	POL  → Politics
	LIFE → Lifestyle
	EDU  → Education

Account roles:

	RoleUser  = "user"
	RoleAdmin = "admin"

# Identity

Identity describes the caller of an operation and is threaded explicitly
through every core call. The zero value (models.Anonymous) is an
unauthenticated caller; middleware fills in UserID and Role from the
bearer token.

# Request Types

  - RegisterRequest: username, email, password
  - LoginRequest: username, password
  - CreatePollRequest: question, category, expires_at?, options (≥2)
  - UpdatePollRequest: partial question/category/expires_at
  - CastVoteRequest: option_id

# Response Types

  - LoginResponse: token, user
  - CategoryChoice: value, label
  - CastVoteResponse: vote_id, option_id
  - PollResults: poll_id, question, total_votes, options with counts and
    percentages
  - PollDetail: poll, options, active flag, caller's own vote
  - ErrorResponse: error, message

# Domain Types

  - User: account with role (password hash never serialized)
  - Poll: question, category, creator, immutable created_at, optional
    expires_at
  - Option: belongs to exactly one poll, fixed at creation
  - Vote: one per (poll, user), references an option of that poll
*/
package models
