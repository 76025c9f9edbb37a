// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"errors"
	"testing"
	"time"

	"github.com/maina2/pollpro/auth"
	"github.com/maina2/pollpro/models"
	"github.com/maina2/pollpro/testutil"
)

// insertVote performs the same insert Cast issues, returning the raw
// driver error.
func insertVote(t *testing.T, l *Ledger, pollID, optionID, userID string) error {
	t.Helper()
	_, err := l.db.Exec(`
		INSERT INTO vote (id, poll_id, option_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, auth.NewID(), pollID, optionID, userID, time.Now())
	return err
}

// TestCastInsertDeletedPoll reproduces the losing side of a cast racing
// a poll deletion: the checks pass, the cascade removes the poll, and
// the insert fails its foreign-key constraint. The failure must come
// back as ErrNotFound, the same answer a serial caller would get.
func TestCastInsertDeletedPoll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	ledger := NewLedger(db)
	voter, _ := testutil.CreateTestUser(t, db, "voter", models.RoleUser)
	pollID, optionIDs := testutil.CreateTestPoll(t, db, voter.ID, nil, "A", "B")

	if _, err := db.Exec(`DELETE FROM poll WHERE id = $1`, pollID); err != nil {
		t.Fatalf("Failed to delete poll: %v", err)
	}

	insertErr := insertVote(t, ledger, pollID, optionIDs[0], voter.ID)
	if insertErr == nil {
		t.Fatal("Expected the insert to fail against a deleted poll")
	}
	if !isForeignKeyViolation(insertErr) {
		t.Fatalf("Expected a foreign-key violation, got: %v", insertErr)
	}

	if err := ledger.castInsertError(pollID, insertErr); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for a deleted poll, got: %v", err)
	}
}

// TestCastInsertDeletedOption covers the narrower race where the poll
// survives but the referenced option row is gone by insert time.
func TestCastInsertDeletedOption(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	ledger := NewLedger(db)
	voter, _ := testutil.CreateTestUser(t, db, "voter", models.RoleUser)
	pollID, optionIDs := testutil.CreateTestPoll(t, db, voter.ID, nil, "A", "B")

	if _, err := db.Exec(`DELETE FROM option WHERE id = $1`, optionIDs[0]); err != nil {
		t.Fatalf("Failed to delete option: %v", err)
	}

	insertErr := insertVote(t, ledger, pollID, optionIDs[0], voter.ID)
	if insertErr == nil {
		t.Fatal("Expected the insert to fail against a deleted option")
	}

	if err := ledger.castInsertError(pollID, insertErr); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Expected ErrInvalidOption for a deleted option, got: %v", err)
	}
}

// TestCastInsertDuplicate keeps the uniqueness translation honest: a
// constraint violation on (poll_id, user_id) maps to ErrDuplicateVote.
func TestCastInsertDuplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	ledger := NewLedger(db)
	voter, _ := testutil.CreateTestUser(t, db, "voter", models.RoleUser)
	pollID, optionIDs := testutil.CreateTestPoll(t, db, voter.ID, nil, "A", "B")
	testutil.CastTestVote(t, db, pollID, optionIDs[0], voter.ID)

	insertErr := insertVote(t, ledger, pollID, optionIDs[1], voter.ID)
	if insertErr == nil {
		t.Fatal("Expected the insert to fail for a duplicate vote")
	}
	if !isUniqueViolation(insertErr) {
		t.Fatalf("Expected a unique violation, got: %v", insertErr)
	}

	if err := ledger.castInsertError(pollID, insertErr); !errors.Is(err, ErrDuplicateVote) {
		t.Errorf("Expected ErrDuplicateVote, got: %v", err)
	}
}
