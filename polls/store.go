// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/maina2/pollpro/auth"
	"github.com/maina2/pollpro/models"
)

// Store is the poll entity manager. It owns poll creation, update,
// deletion, and listing; votes are owned by Ledger.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// IsActive reports whether the poll accepts votes at the given instant.
// A poll with no expiry never expires; expires_at equal to now counts as
// expired.
func IsActive(poll models.Poll, now time.Time) bool {
	return poll.ExpiresAt == nil || poll.ExpiresAt.After(now)
}

// Create persists a poll and its options atomically. The creator is taken
// from the caller identity, never from the request payload.
func (s *Store) Create(question string, category models.Category, expiresAt *time.Time, optionTexts []string, caller models.Identity) (models.Poll, []models.Option, error) {
	if strings.TrimSpace(question) == "" {
		return models.Poll{}, nil, fmt.Errorf("%w: question is required", ErrValidation)
	}
	if !category.Valid() {
		return models.Poll{}, nil, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}
	if len(optionTexts) < 2 {
		return models.Poll{}, nil, fmt.Errorf("%w: poll must have at least 2 options", ErrValidation)
	}
	for _, text := range optionTexts {
		if strings.TrimSpace(text) == "" {
			return models.Poll{}, nil, fmt.Errorf("%w: option text is required", ErrValidation)
		}
	}

	poll := models.Poll{
		ID:        auth.NewID(),
		Question:  question,
		CreatorID: caller.UserID,
		Category:  category,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.Poll{}, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO poll (id, question, creator_id, category, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, poll.ID, poll.Question, poll.CreatorID, poll.Category, poll.CreatedAt, poll.ExpiresAt)
	if err != nil {
		return models.Poll{}, nil, fmt.Errorf("failed to insert poll: %w", err)
	}

	options := make([]models.Option, 0, len(optionTexts))
	for _, text := range optionTexts {
		opt := models.Option{ID: auth.NewID(), PollID: poll.ID, Text: text}
		_, err = tx.Exec(`
			INSERT INTO option (id, poll_id, text)
			VALUES ($1, $2, $3)
		`, opt.ID, opt.PollID, opt.Text)
		if err != nil {
			// Rollback via defer: no partial poll survives a failed option insert
			return models.Poll{}, nil, fmt.Errorf("failed to insert option: %w", err)
		}
		options = append(options, opt)
	}

	if err := tx.Commit(); err != nil {
		return models.Poll{}, nil, fmt.Errorf("failed to commit poll creation: %w", err)
	}

	slog.Info("poll created", "poll_id", poll.ID, "creator_id", poll.CreatorID, "options", len(options))
	return poll, options, nil
}

// Get returns a poll and its options.
func (s *Store) Get(pollID string) (models.Poll, []models.Option, error) {
	poll, err := s.getPoll(pollID)
	if err != nil {
		return models.Poll{}, nil, err
	}

	options, err := s.getOptions(pollID)
	if err != nil {
		return models.Poll{}, nil, err
	}

	return poll, options, nil
}

// Update mutates question, category, and/or expiry. Only the creator may
// update a poll; options are immutable after creation.
func (s *Store) Update(pollID string, caller models.Identity, fields models.UpdatePollRequest) (models.Poll, error) {
	poll, err := s.getPoll(pollID)
	if err != nil {
		return models.Poll{}, err
	}

	if !Allow(OpUpdatePoll, caller, poll.CreatorID) {
		return models.Poll{}, ErrPermission
	}

	if fields.Question != nil {
		if strings.TrimSpace(*fields.Question) == "" {
			return models.Poll{}, fmt.Errorf("%w: question is required", ErrValidation)
		}
		poll.Question = *fields.Question
	}
	if fields.Category != nil {
		if !fields.Category.Valid() {
			return models.Poll{}, fmt.Errorf("%w: unknown category %q", ErrValidation, *fields.Category)
		}
		poll.Category = *fields.Category
	}
	if fields.ExpiresAt != nil {
		poll.ExpiresAt = fields.ExpiresAt
	}

	_, err = s.db.Exec(`
		UPDATE poll
		SET question = $1, category = $2, expires_at = $3
		WHERE id = $4
	`, poll.Question, poll.Category, poll.ExpiresAt, poll.ID)
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to update poll: %w", err)
	}

	slog.Info("poll updated", "poll_id", poll.ID, "caller_id", caller.UserID)
	return poll, nil
}

// Delete removes a poll. Deletion cascades to its options and votes at the
// storage level. Only the creator or an admin may delete.
func (s *Store) Delete(pollID string, caller models.Identity) error {
	poll, err := s.getPoll(pollID)
	if err != nil {
		return err
	}

	if !Allow(OpDeletePoll, caller, poll.CreatorID) {
		return ErrPermission
	}

	_, err = s.db.Exec(`DELETE FROM poll WHERE id = $1`, pollID)
	if err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}

	slog.Info("poll deleted", "poll_id", pollID, "caller_id", caller.UserID, "caller_role", caller.Role)
	return nil
}

// List returns polls ordered by creation time descending. An unknown
// category filter yields an empty list, not an error.
func (s *Store) List(categoryFilter string) ([]models.Poll, error) {
	if categoryFilter != "" && !models.Category(categoryFilter).Valid() {
		return []models.Poll{}, nil
	}

	query := `
		SELECT id, question, creator_id, category, created_at, expires_at
		FROM poll
		ORDER BY created_at DESC
	`
	args := []interface{}{}
	if categoryFilter != "" {
		query = `
			SELECT id, question, creator_id, category, created_at, expires_at
			FROM poll
			WHERE category = $1
			ORDER BY created_at DESC
		`
		args = append(args, categoryFilter)
	}

	return s.queryPolls(query, args...)
}

// ListByCreator returns the polls created by a user, newest first.
func (s *Store) ListByCreator(userID string) ([]models.Poll, error) {
	return s.queryPolls(`
		SELECT id, question, creator_id, category, created_at, expires_at
		FROM poll
		WHERE creator_id = $1
		ORDER BY created_at DESC
	`, userID)
}

// ListVotedBy returns the polls a user has voted on, newest first.
func (s *Store) ListVotedBy(userID string) ([]models.Poll, error) {
	return s.queryPolls(`
		SELECT p.id, p.question, p.creator_id, p.category, p.created_at, p.expires_at
		FROM poll p
		JOIN vote v ON v.poll_id = p.id
		WHERE v.user_id = $1
		ORDER BY p.created_at DESC
	`, userID)
}

func (s *Store) getPoll(pollID string) (models.Poll, error) {
	var poll models.Poll
	err := s.db.QueryRow(`
		SELECT id, question, creator_id, category, created_at, expires_at
		FROM poll
		WHERE id = $1
	`, pollID).Scan(&poll.ID, &poll.Question, &poll.CreatorID, &poll.Category, &poll.CreatedAt, &poll.ExpiresAt)

	if err == sql.ErrNoRows {
		return models.Poll{}, ErrNotFound
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to query poll: %w", err)
	}
	return poll, nil
}

func (s *Store) getOptions(pollID string) ([]models.Option, error) {
	rows, err := s.db.Query(`
		SELECT id, poll_id, text
		FROM option
		WHERE poll_id = $1
		ORDER BY id
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	options := []models.Option{}
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Text); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, opt)
	}
	return options, rows.Err()
}

func (s *Store) queryPolls(query string, args ...interface{}) ([]models.Poll, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	list := []models.Poll{}
	for rows.Next() {
		var poll models.Poll
		if err := rows.Scan(&poll.ID, &poll.Question, &poll.CreatorID, &poll.Category, &poll.CreatedAt, &poll.ExpiresAt); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		list = append(list, poll)
	}
	return list, rows.Err()
}
