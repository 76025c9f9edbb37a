// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema

Four tables:

  - users: accounts with unique username/email and an enumerated role
  - poll: question, category, creator reference, optional expires_at
  - option: poll options (fixed at poll creation)
  - vote: one row per cast vote

# Relationships

	users 1──* poll (creator_id, cascade)
	poll  1──* option (poll_id, cascade)
	poll  1──* vote (poll_id, cascade)
	option 1──* vote (option_id, cascade)
	users 1──* vote (user_id, cascade)

# Constraints

  - vote (poll_id, user_id) is UNIQUE. This is the race guard for the
    one-vote-per-user rule: two concurrent casts for the same pair cannot
    both insert.
  - users.username and users.email are UNIQUE.
  - Deleting a poll cascades to its options and votes; deleting an option
    or user cascades to their votes.

# Dialects

CreateSchema takes the driver name and picks Postgres or SQLite DDL; the
two differ only in the timestamp default (NOW() vs CURRENT_TIMESTAMP).
*/
package db
