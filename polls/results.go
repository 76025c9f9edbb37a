// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"fmt"

	"github.com/maina2/pollpro/models"
)

// Aggregator computes poll results on demand. Results are never cached;
// every call reflects the ledger state at that instant.
type Aggregator struct {
	store *Store
}

func NewAggregator(store *Store) *Aggregator {
	return &Aggregator{store: store}
}

// Results returns per-option vote counts and percentages for a poll.
// Percentages are 0 when the poll has no votes.
func (a *Aggregator) Results(pollID string) (models.PollResults, error) {
	poll, err := a.store.getPoll(pollID)
	if err != nil {
		return models.PollResults{}, err
	}

	rows, err := a.store.db.Query(`
		SELECT o.id, o.text, COUNT(v.id)
		FROM option o
		LEFT JOIN vote v ON v.option_id = o.id
		WHERE o.poll_id = $1
		GROUP BY o.id, o.text
		ORDER BY o.id
	`, pollID)
	if err != nil {
		return models.PollResults{}, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	results := models.PollResults{
		PollID:   poll.ID,
		Question: poll.Question,
		Options:  []models.OptionResult{},
	}

	for rows.Next() {
		var opt models.OptionResult
		if err := rows.Scan(&opt.OptionID, &opt.Text, &opt.VoteCount); err != nil {
			return models.PollResults{}, fmt.Errorf("failed to scan result row: %w", err)
		}
		results.TotalVotes += opt.VoteCount
		results.Options = append(results.Options, opt)
	}
	if err := rows.Err(); err != nil {
		return models.PollResults{}, fmt.Errorf("failed to read result rows: %w", err)
	}

	if results.TotalVotes > 0 {
		for i := range results.Options {
			results.Options[i].Percentage = float64(results.Options[i].VoteCount) / float64(results.TotalVotes) * 100
		}
	}

	return results, nil
}
