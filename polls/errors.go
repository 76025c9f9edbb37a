// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// Domain error kinds. Operations return these (possibly wrapped with
// detail via fmt.Errorf("%w: ...")); handlers match with errors.Is and
// translate once at the HTTP boundary.
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("poll not found")
	ErrPermission    = errors.New("permission denied")
	ErrExpired       = errors.New("poll is expired")
	ErrDuplicateVote = errors.New("vote already cast for this poll")
	ErrInvalidOption = errors.New("option does not belong to this poll")
	ErrNoVote        = errors.New("no vote found to retract")
)

// isUniqueViolation reports whether err is a storage-level uniqueness
// constraint violation, for either supported driver.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isForeignKeyViolation reports whether err is a storage-level foreign
// key violation, for either supported driver. Cast hits this when the
// poll (or its option) is deleted between its checks and the insert.
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503" // foreign_key_violation
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
