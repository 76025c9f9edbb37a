// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"

	"github.com/maina2/pollpro/cliparse"
	"github.com/maina2/pollpro/middleware"
	"github.com/maina2/pollpro/models"
	"github.com/maina2/pollpro/polls"
)

type VoteHandler struct {
	ledger *polls.Ledger
	cfg    cliparse.Config
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{ledger: polls.NewLedger(db), cfg: cfg}
}

// CastVote handles POST /polls/{id}/vote
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	caller := middleware.IdentityFrom(r.Context())
	if !polls.Allow(polls.OpCastVote, caller, "") {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.OptionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "option_id is required")
		return
	}

	vote, err := h.ledger.Cast(pollID, req.OptionID, caller.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		VoteID:   vote.ID,
		OptionID: vote.OptionID,
	})
}

// RetractVote handles DELETE /polls/{id}/vote
func (h *VoteHandler) RetractVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	caller := middleware.IdentityFrom(r.Context())
	if !polls.Allow(polls.OpRetractVote, caller, "") {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.ledger.Retract(pollID, caller.UserID); err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"detail": "Vote retracted",
	})
}
