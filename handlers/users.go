// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/maina2/pollpro/auth"
	"github.com/maina2/pollpro/cliparse"
	"github.com/maina2/pollpro/middleware"
	"github.com/maina2/pollpro/models"
	"github.com/maina2/pollpro/users"
)

type UserHandler struct {
	store *users.Store
	cfg   cliparse.Config
}

func NewUserHandler(db *sql.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{store: users.NewStore(db), cfg: cfg}
}

// Register handles POST /register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	user, err := h.store.Register(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrBadInput) || errors.Is(err, users.ErrTaken) {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("registration failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, user)
}

// Login handles POST /login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	user, err := h.store.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrBadPassword) {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		slog.Error("login failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	ttl := time.Duration(h.cfg.TokenTTLHours) * time.Hour
	token, err := auth.IssueToken(user.ID, user.Role, h.cfg.JWTSecret, ttl)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token: token,
		User:  user,
	})
}

// Me handles GET /users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	caller := middleware.IdentityFrom(r.Context())

	user, err := h.store.Get(caller.UserID)
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
