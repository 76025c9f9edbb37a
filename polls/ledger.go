// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/maina2/pollpro/auth"
	"github.com/maina2/pollpro/models"
)

// Ledger owns vote casting and retraction. The one-vote-per-user-per-poll
// invariant is enforced by the UNIQUE (poll_id, user_id) constraint; the
// pre-insert check only exists to give a clean error on the common path.
type Ledger struct {
	db    *sql.DB
	store *Store
}

func NewLedger(db *sql.DB) *Ledger {
	return &Ledger{db: db, store: NewStore(db)}
}

// Cast records a vote by voterID for optionID on pollID.
func (l *Ledger) Cast(pollID, optionID, voterID string) (models.Vote, error) {
	// Activity is judged against the clock read at operation start
	now := time.Now()

	poll, err := l.store.getPoll(pollID)
	if err != nil {
		return models.Vote{}, err
	}

	if !IsActive(poll, now) {
		return models.Vote{}, ErrExpired
	}

	var exists bool
	err = l.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM vote WHERE poll_id = $1 AND user_id = $2)
	`, pollID, voterID).Scan(&exists)
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to check existing vote: %w", err)
	}
	if exists {
		return models.Vote{}, ErrDuplicateVote
	}

	var optionPollID string
	err = l.db.QueryRow(`SELECT poll_id FROM option WHERE id = $1`, optionID).Scan(&optionPollID)
	if err == sql.ErrNoRows || (err == nil && optionPollID != pollID) {
		return models.Vote{}, ErrInvalidOption
	}
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to query option: %w", err)
	}

	vote := models.Vote{
		ID:        auth.NewID(),
		PollID:    pollID,
		OptionID:  optionID,
		UserID:    voterID,
		CreatedAt: now,
	}

	_, err = l.db.Exec(`
		INSERT INTO vote (id, poll_id, option_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, vote.ID, vote.PollID, vote.OptionID, vote.UserID, vote.CreatedAt)
	if err != nil {
		return models.Vote{}, l.castInsertError(pollID, err)
	}

	slog.Info("vote cast", "poll_id", pollID, "option_id", optionID, "user_id", voterID)
	return vote, nil
}

// castInsertError translates a failed vote insert into a domain error.
// Cast's checks race against concurrent writers; the constraints decide
// the outcome and the loser gets the same error a serial caller would.
func (l *Ledger) castInsertError(pollID string, err error) error {
	// Another cast for the same (poll, user) won the insert.
	if isUniqueViolation(err) {
		return ErrDuplicateVote
	}
	// The poll or its option was deleted after the checks; the cascade
	// already removed the rows this vote references.
	if isForeignKeyViolation(err) {
		if _, perr := l.store.getPoll(pollID); perr != nil {
			return perr
		}
		return ErrInvalidOption
	}
	return fmt.Errorf("failed to insert vote: %w", err)
}

// Retract removes voterID's vote on pollID. Retraction is frozen once the
// poll expires, so closing-time results cannot be altered.
func (l *Ledger) Retract(pollID, voterID string) error {
	now := time.Now()

	poll, err := l.store.getPoll(pollID)
	if err != nil {
		return err
	}

	if !IsActive(poll, now) {
		return ErrExpired
	}

	res, err := l.db.Exec(`
		DELETE FROM vote WHERE poll_id = $1 AND user_id = $2
	`, pollID, voterID)
	if err != nil {
		return fmt.Errorf("failed to delete vote: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNoVote
	}

	slog.Info("vote retracted", "poll_id", pollID, "user_id", voterID)
	return nil
}

// VoteFor returns voterID's vote on pollID, or ErrNoVote.
func (l *Ledger) VoteFor(pollID, voterID string) (models.Vote, error) {
	var vote models.Vote
	err := l.db.QueryRow(`
		SELECT id, poll_id, option_id, user_id, created_at
		FROM vote
		WHERE poll_id = $1 AND user_id = $2
	`, pollID, voterID).Scan(&vote.ID, &vote.PollID, &vote.OptionID, &vote.UserID, &vote.CreatedAt)

	if err == sql.ErrNoRows {
		return models.Vote{}, ErrNoVote
	}
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to query vote: %w", err)
	}
	return vote, nil
}

// ListVotes returns every vote, newest first. Admin surface only.
func (l *Ledger) ListVotes() ([]models.Vote, error) {
	rows, err := l.db.Query(`
		SELECT id, poll_id, option_id, user_id, created_at
		FROM vote
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var vote models.Vote
		if err := rows.Scan(&vote.ID, &vote.PollID, &vote.OptionID, &vote.UserID, &vote.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, vote)
	}
	return votes, rows.Err()
}

// DeleteVote removes a vote by ID. Admin surface only.
func (l *Ledger) DeleteVote(voteID string) error {
	res, err := l.db.Exec(`DELETE FROM vote WHERE id = $1`, voteID)
	if err != nil {
		return fmt.Errorf("failed to delete vote: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNoVote
	}

	slog.Info("vote deleted by admin", "vote_id", voteID)
	return nil
}
