// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import "github.com/maina2/pollpro/models"

// Operation enumerates the actions the access policy decides on.
type Operation int

const (
	OpViewPoll Operation = iota
	OpListPolls
	OpViewResults
	OpListCategories
	OpCreatePoll
	OpCastVote
	OpRetractVote
	OpUpdatePoll
	OpDeletePoll
	OpAdminManage
)

// Allow decides whether caller may perform op. resourceOwner is the user
// ID owning the target resource; it is only consulted for owner-scoped
// operations and may be empty otherwise. Allow is pure: no side effects,
// no storage access.
func Allow(op Operation, caller models.Identity, resourceOwner string) bool {
	switch op {
	case OpViewPoll, OpListPolls, OpViewResults, OpListCategories:
		// Read surface is public, anonymous callers included
		return true
	case OpCreatePoll, OpCastVote, OpRetractVote:
		return caller.Authenticated
	case OpUpdatePoll:
		return caller.Authenticated && caller.UserID == resourceOwner
	case OpDeletePoll:
		return caller.Authenticated && (caller.Role == models.RoleAdmin || caller.UserID == resourceOwner)
	case OpAdminManage:
		return caller.Authenticated && caller.Role == models.RoleAdmin
	}
	return false
}
