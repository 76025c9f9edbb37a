// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package users

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/maina2/pollpro/auth"
	"github.com/maina2/pollpro/models"
)

var (
	ErrNotFound    = errors.New("user not found")
	ErrTaken       = errors.New("username or email already taken")
	ErrBadInput    = errors.New("invalid registration input")
	ErrBadPassword = errors.New("invalid username or password")
)

// Store is the identity collaborator: account registration, login lookup,
// and the admin user-management surface.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Register creates an account with the user role.
func (s *Store) Register(username, email, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" {
		return models.User{}, fmt.Errorf("%w: username and email are required", ErrBadInput)
	}
	if !strings.Contains(email, "@") {
		return models.User{}, fmt.Errorf("%w: malformed email", ErrBadInput)
	}
	if len(password) < 8 {
		return models.User{}, fmt.Errorf("%w: password must be at least 8 characters", ErrBadInput)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           auth.NewID(),
		Username:     username,
		Email:        email,
		Role:         models.RoleUser,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	_, err = s.db.Exec(`
		INSERT INTO users (id, username, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, user.ID, user.Username, user.Email, user.PasswordHash, user.Role, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrTaken
		}
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Authenticate checks credentials and returns the account.
func (s *Store) Authenticate(username, password string) (models.User, error) {
	user, err := s.getBy("username", username)
	if err == ErrNotFound {
		return models.User{}, ErrBadPassword
	}
	if err != nil {
		return models.User{}, err
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return models.User{}, ErrBadPassword
	}
	return user, nil
}

// Get returns an account by ID.
func (s *Store) Get(userID string) (models.User, error) {
	return s.getBy("id", userID)
}

// List returns every account, newest first. Admin surface only.
func (s *Store) List() ([]models.User, error) {
	rows, err := s.db.Query(`
		SELECT id, username, email, password_hash, role, created_at
		FROM users
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	list := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		list = append(list, user)
	}
	return list, rows.Err()
}

// Delete removes an account. Admin surface only; the account's polls and
// votes cascade away at the storage level.
func (s *Store) Delete(userID string) error {
	res, err := s.db.Exec(`DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	slog.Info("user deleted", "user_id", userID)
	return nil
}

func (s *Store) getBy(column, value string) (models.User, error) {
	var user models.User
	err := s.db.QueryRow(`
		SELECT id, username, email, password_hash, role, created_at
		FROM users
		WHERE `+column+` = $1
	`, value).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
