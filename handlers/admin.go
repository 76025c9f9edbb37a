// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/maina2/pollpro/cliparse"
	"github.com/maina2/pollpro/middleware"
	"github.com/maina2/pollpro/polls"
	"github.com/maina2/pollpro/users"
)

// AdminHandler exposes the privileged management surface: listing and
// deleting users, polls, and votes directly.
type AdminHandler struct {
	users  *users.Store
	store  *polls.Store
	ledger *polls.Ledger
	cfg    cliparse.Config
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{
		users:  users.NewStore(db),
		store:  polls.NewStore(db),
		ledger: polls.NewLedger(db),
		cfg:    cfg,
	}
}

// requireAdmin enforces the admin-only policy for every management route.
func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	caller := middleware.IdentityFrom(r.Context())
	if !polls.Allow(polls.OpAdminManage, caller, "") {
		middleware.ErrorResponse(w, http.StatusForbidden, "Admin role required")
		return false
	}
	return true
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	list, err := h.users.List()
	if err != nil {
		slog.Error("failed to list users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, list)
}

// GetUser handles GET /admin/users/{id}
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	user, err := h.users.Get(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("failed to load user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /admin/users/{id}
// The user's polls and votes cascade away with the account.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	if err := h.users.Delete(r.PathValue("id")); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("failed to delete user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListAllPolls handles GET /admin/polls
func (h *AdminHandler) ListAllPolls(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	list, err := h.store.List("")
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, list)
}

// ListVotes handles GET /admin/votes
func (h *AdminHandler) ListVotes(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	votes, err := h.ledger.ListVotes()
	if err != nil {
		slog.Error("failed to list votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, votes)
}

// DeleteVote handles DELETE /admin/votes/{id}
func (h *AdminHandler) DeleteVote(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	if err := h.ledger.DeleteVote(r.PathValue("id")); err != nil {
		if errors.Is(err, polls.ErrNoVote) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Vote not found")
			return
		}
		slog.Error("failed to delete vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
