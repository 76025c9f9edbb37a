// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/maina2/pollpro/cliparse"
	"github.com/maina2/pollpro/handlers"
	"github.com/maina2/pollpro/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	secret := cfg.JWTSecret
	public := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(h)
	}
	authed := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAuth(secret, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Identity
	mux.HandleFunc("POST /register", public(userHandler.Register))
	mux.HandleFunc("POST /login", public(userHandler.Login))
	mux.HandleFunc("GET /users/me", authed(userHandler.Me))

	// Polls (public reads, authenticated writes)
	mux.HandleFunc("GET /polls", public(pollHandler.ListPolls))
	mux.HandleFunc("POST /polls", authed(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls/mine", authed(pollHandler.MyPolls))
	mux.HandleFunc("GET /polls/voted", authed(pollHandler.VotedPolls))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(middleware.OptionalAuth(secret, pollHandler.GetPoll)))
	mux.HandleFunc("PATCH /polls/{id}", authed(pollHandler.UpdatePoll))
	mux.HandleFunc("DELETE /polls/{id}", authed(pollHandler.DeletePoll))

	// Voting
	mux.HandleFunc("POST /polls/{id}/vote", authed(voteHandler.CastVote))
	mux.HandleFunc("DELETE /polls/{id}/vote", authed(voteHandler.RetractVote))

	// Results and categories (public)
	mux.HandleFunc("GET /polls/{id}/results", public(resultsHandler.GetResults))
	mux.HandleFunc("GET /categories", public(resultsHandler.GetCategories))

	// Admin management
	mux.HandleFunc("GET /admin/users", authed(adminHandler.ListUsers))
	mux.HandleFunc("GET /admin/users/{id}", authed(adminHandler.GetUser))
	mux.HandleFunc("DELETE /admin/users/{id}", authed(adminHandler.DeleteUser))
	mux.HandleFunc("GET /admin/polls", authed(adminHandler.ListAllPolls))
	mux.HandleFunc("GET /admin/votes", authed(adminHandler.ListVotes))
	mux.HandleFunc("DELETE /admin/votes/{id}", authed(adminHandler.DeleteVote))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("PollPro API v1"))
	})

	return mux
}
