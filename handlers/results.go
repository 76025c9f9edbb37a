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

type ResultsHandler struct {
	aggregator *polls.Aggregator
	cfg        cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{
		aggregator: polls.NewAggregator(polls.NewStore(db)),
		cfg:        cfg,
	}
}

// GetResults handles GET /polls/{id}/results
// Results are public and computed fresh on every call.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	results, err := h.aggregator.Results(pollID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// GetCategories handles GET /categories
func (h *ResultsHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	choices := make([]models.CategoryChoice, 0, len(models.Categories))
	for _, c := range models.Categories {
		choices = append(choices, models.CategoryChoice{Value: c, Label: c.Label()})
	}
	middleware.JSONResponse(w, http.StatusOK, choices)
}
