// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/maina2/pollpro/middleware"
	"github.com/maina2/pollpro/polls"
)

// writeDomainError translates a core error into a structured failure
// response. This is the single point where the error taxonomy meets HTTP;
// anything unrecognized is logged and reported as a 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, polls.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, polls.ErrPermission):
		middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
	case errors.Is(err, polls.ErrValidation),
		errors.Is(err, polls.ErrExpired),
		errors.Is(err, polls.ErrDuplicateVote),
		errors.Is(err, polls.ErrInvalidOption),
		errors.Is(err, polls.ErrNoVote):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
