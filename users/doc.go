// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package users is the identity collaborator: account registration, login,
and the admin user-management surface.

Registration enforces unique username and email (storage constraint,
translated to ErrTaken), a minimal email shape, and an 8-character password
minimum. Passwords are stored as bcrypt hashes; Authenticate returns
ErrBadPassword for both unknown usernames and wrong passwords so the two
are indistinguishable to a caller.

New accounts always get the user role. Admin accounts are provisioned
directly in the database.
*/
package users
