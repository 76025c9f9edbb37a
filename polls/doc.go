// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package polls is the voting core: poll lifecycle, the vote ledger, result
aggregation, and the access policy.

# Components

  - Store: poll entity manager. Atomic create-with-options (≥2 options,
    valid category, non-empty question), creator-only update, creator-or-
    admin delete with cascade, listing with category filter.
  - Ledger: vote cast/retract. One vote per (poll, user), enforced by the
    storage uniqueness constraint; retraction is frozen on expired polls.
  - Aggregator: per-option counts and percentages, computed fresh from the
    ledger on every call.
  - Allow: pure access decision over enumerated operations and roles.

# Error Kinds

Operations return sentinel errors that handlers translate exactly once:

	ErrValidation    → 400
	ErrExpired       → 400
	ErrDuplicateVote → 400
	ErrInvalidOption → 400
	ErrNoVote        → 400
	ErrPermission    → 403
	ErrNotFound      → 404

Storage-level constraint errors on vote insert are caught here and
surfaced as domain errors (ErrDuplicateVote for a uniqueness violation,
ErrNotFound or ErrInvalidOption for a foreign-key violation), never as
raw driver errors.

# Activity

A poll is active iff it has no expiry or its expiry is strictly after the
current instant; expires_at == now is expired. Activity is evaluated at
read time against the wall clock captured at the start of the operation.

# Concurrency

Cast performs check-then-insert, but the check is only an optimization:
when two casts for the same (poll, user) race, the UNIQUE (poll_id,
user_id) index lets exactly one insert succeed and the other is mapped to
ErrDuplicateVote. A poll deleted mid-cast surfaces as ErrNotFound: either
the poll lookup misses, or the insert fails the foreign-key check after
the cascade and the failure is translated. Never an orphaned vote.
*/
package polls
