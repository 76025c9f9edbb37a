// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/maina2/pollpro/cliparse"
	"github.com/maina2/pollpro/middleware"
	"github.com/maina2/pollpro/models"
	"github.com/maina2/pollpro/polls"
)

type PollHandler struct {
	store  *polls.Store
	ledger *polls.Ledger
	cfg    cliparse.Config
}

func NewPollHandler(db *sql.DB, cfg cliparse.Config) *PollHandler {
	return &PollHandler{
		store:  polls.NewStore(db),
		ledger: polls.NewLedger(db),
		cfg:    cfg,
	}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	caller := middleware.IdentityFrom(r.Context())
	if !polls.Allow(polls.OpCreatePoll, caller, "") {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, options, err := h.store.Create(req.Question, req.Category, req.ExpiresAt, req.Options, caller)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, pollDetail(poll, options, nil))
}

// GetPoll handles GET /polls/{id}
// Includes the caller's own vote when the caller is authenticated.
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	poll, options, err := h.store.Get(pollID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var myVote *models.Vote
	caller := middleware.IdentityFrom(r.Context())
	if caller.Authenticated {
		vote, err := h.ledger.VoteFor(pollID, caller.UserID)
		if err == nil {
			myVote = &vote
		} else if !errors.Is(err, polls.ErrNoVote) {
			writeDomainError(w, err)
			return
		}
	}

	middleware.JSONResponse(w, http.StatusOK, pollDetail(poll, options, myVote))
}

// UpdatePoll handles PATCH /polls/{id}
func (h *PollHandler) UpdatePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var req models.UpdatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	caller := middleware.IdentityFrom(r.Context())
	poll, err := h.store.Update(pollID, caller, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// DeletePoll handles DELETE /polls/{id}
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	caller := middleware.IdentityFrom(r.Context())
	if err := h.store.Delete(pollID, caller); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListPolls handles GET /polls with an optional category filter.
// An unknown category yields an empty list.
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.List(r.URL.Query().Get("category"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, list)
}

// MyPolls handles GET /polls/mine
func (h *PollHandler) MyPolls(w http.ResponseWriter, r *http.Request) {
	caller := middleware.IdentityFrom(r.Context())
	list, err := h.store.ListByCreator(caller.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, list)
}

// VotedPolls handles GET /polls/voted
func (h *PollHandler) VotedPolls(w http.ResponseWriter, r *http.Request) {
	caller := middleware.IdentityFrom(r.Context())
	list, err := h.store.ListVotedBy(caller.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, list)
}

func pollDetail(poll models.Poll, options []models.Option, myVote *models.Vote) models.PollDetail {
	detail := models.PollDetail{
		Poll:    poll,
		Options: options,
		Active:  polls.IsActive(poll, time.Now()),
		MyVote:  myVote,
	}
	if poll.ExpiresAt != nil {
		detail.ExpiresIn = humanize.Time(*poll.ExpiresAt)
	}
	return detail
}
