// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token and credential primitives.

# Access Tokens

Tokens are HS256 JWTs carrying the user ID and role:

	token, err := auth.IssueToken(userID, models.RoleUser, secret, 24*time.Hour)
	identity, err := auth.ValidateToken(token, secret)

ValidateToken returns a models.Identity with Authenticated set; any parse,
signature, or expiry failure yields ErrInvalidToken and the anonymous
identity. The role claim is checked against the role enumeration so a
forged or stale role string never reaches the policy evaluator.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, password) // ErrInvalidCredentials on mismatch

# IDs

NewID returns a UUID string; all entity IDs (users, polls, options, votes)
use it.
*/
package auth
