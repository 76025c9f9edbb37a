// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/maina2/pollpro/middleware"
	"github.com/maina2/pollpro/models"
	"github.com/maina2/pollpro/testutil"
)

func TestCastVote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewVoteHandler(db, testutil.GetTestConfig())
	creator, _ := testutil.CreateTestUser(t, db, "creator", models.RoleUser)
	voter, _ := testutil.CreateTestUser(t, db, "voter", models.RoleUser)
	pollID, optionIDs := testutil.CreateTestPoll(t, db, creator.ID, nil, "Red", "Blue")

	req := testutil.MakeRequest("POST", "/polls/"+pollID+"/vote", models.CastVoteRequest{OptionID: optionIDs[0]}, nil)
	req.SetPathValue("id", pollID)
	req = req.WithContext(middleware.WithIdentity(req.Context(), identityFor(voter)))
	w := httptest.NewRecorder()

	h.CastVote(w, req)
	testutil.AssertStatus(t, w, 201)

	var resp models.CastVoteResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.OptionID != optionIDs[0] {
		t.Errorf("Expected vote for option %s, got %s", optionIDs[0], resp.OptionID)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM vote WHERE poll_id = $1 AND user_id = $2", pollID, voter.ID).Scan(&count); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly 1 vote recorded, got %d", count)
	}
}

func TestCastVoteTwice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewVoteHandler(db, testutil.GetTestConfig())
	creator, _ := testutil.CreateTestUser(t, db, "creator", models.RoleUser)
	voter, _ := testutil.CreateTestUser(t, db, "voter", models.RoleUser)
	pollID, optionIDs := testutil.CreateTestPoll(t, db, creator.ID, nil, "Red", "Blue")
	testutil.CastTestVote(t, db, pollID, optionIDs[0], voter.ID)

	// Second vote is rejected even on a different option
	req := testutil.MakeRequest("POST", "/polls/"+pollID+"/vote", models.CastVoteRequest{OptionID: optionIDs[1]}, nil)
	req.SetPathValue("id", pollID)
	req = req.WithContext(middleware.WithIdentity(req.Context(), identityFor(voter)))
	w := httptest.NewRecorder()

	h.CastVote(w, req)
	testutil.AssertStatus(t, w, 400)

	// The original vote is untouched
	var optionID string
	if err := db.QueryRow("SELECT option_id FROM vote WHERE poll_id = $1 AND user_id = $2", pollID, voter.ID).Scan(&optionID); err != nil {
		t.Fatalf("Failed to load vote: %v", err)
	}
	if optionID != optionIDs[0] {
		t.Errorf("Expected original vote to survive, got option %s", optionID)
	}
}

func TestCastVoteExpiredPoll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewVoteHandler(db, testutil.GetTestConfig())
	creator, _ := testutil.CreateTestUser(t, db, "creator", models.RoleUser)
	voter, _ := testutil.CreateTestUser(t, db, "voter", models.RoleUser)

	past := time.Now().Add(-time.Hour)
	pollID, optionIDs := testutil.CreateTestPoll(t, db, creator.ID, &past, "Red", "Blue")

	req := testutil.MakeRequest("POST", "/polls/"+pollID+"/vote", models.CastVoteRequest{OptionID: optionIDs[0]}, nil)
	req.SetPathValue("id", pollID)
	req = req.WithContext(middleware.WithIdentity(req.Context(), identityFor(voter)))
	w := httptest.NewRecorder()

	h.CastVote(w, req)
	testutil.AssertStatus(t, w, 400)
}

func TestCastVoteWrongPollOption(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewVoteHandler(db, testutil.GetTestConfig())
	creator, _ := testutil.CreateTestUser(t, db, "creator", models.RoleUser)
	voter, _ := testutil.CreateTestUser(t, db, "voter", models.RoleUser)
	pollID, _ := testutil.CreateTestPoll(t, db, creator.ID, nil, "Red", "Blue")
	_, otherOptions := testutil.CreateTestPoll(t, db, creator.ID, nil, "X", "Y")

	// Option belongs to a different poll
	req := testutil.MakeRequest("POST", "/polls/"+pollID+"/vote", models.CastVoteRequest{OptionID: otherOptions[0]}, nil)
	req.SetPathValue("id", pollID)
	req = req.WithContext(middleware.WithIdentity(req.Context(), identityFor(voter)))
	w := httptest.NewRecorder()

	h.CastVote(w, req)
	testutil.AssertStatus(t, w, 400)
}

func TestCastVotePollNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewVoteHandler(db, testutil.GetTestConfig())
	voter, _ := testutil.CreateTestUser(t, db, "voter", models.RoleUser)

	req := testutil.MakeRequest("POST", "/polls/missing/vote", models.CastVoteRequest{OptionID: "opt"}, nil)
	req.SetPathValue("id", "missing")
	req = req.WithContext(middleware.WithIdentity(req.Context(), identityFor(voter)))
	w := httptest.NewRecorder()

	h.CastVote(w, req)
	testutil.AssertStatus(t, w, 404)
}

func TestCastVoteUnauthenticated(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewVoteHandler(db, testutil.GetTestConfig())
	creator, _ := testutil.CreateTestUser(t, db, "creator", models.RoleUser)
	pollID, optionIDs := testutil.CreateTestPoll(t, db, creator.ID, nil, "Red", "Blue")

	req := testutil.MakeRequest("POST", "/polls/"+pollID+"/vote", models.CastVoteRequest{OptionID: optionIDs[0]}, nil)
	req.SetPathValue("id", pollID)
	w := httptest.NewRecorder()

	h.CastVote(w, req)
	testutil.AssertStatus(t, w, 401)
}

func TestRetractVote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewVoteHandler(db, testutil.GetTestConfig())
	creator, _ := testutil.CreateTestUser(t, db, "creator", models.RoleUser)
	voter, _ := testutil.CreateTestUser(t, db, "voter", models.RoleUser)
	pollID, optionIDs := testutil.CreateTestPoll(t, db, creator.ID, nil, "Red", "Blue")
	testutil.CastTestVote(t, db, pollID, optionIDs[0], voter.ID)

	req := testutil.MakeRequest("DELETE", "/polls/"+pollID+"/vote", nil, nil)
	req.SetPathValue("id", pollID)
	req = req.WithContext(middleware.WithIdentity(req.Context(), identityFor(voter)))
	w := httptest.NewRecorder()

	h.RetractVote(w, req)
	testutil.AssertStatus(t, w, 200)

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM vote WHERE poll_id = $1 AND user_id = $2", pollID, voter.ID).Scan(&count); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected vote to be removed, found %d", count)
	}

	// Retracting again fails: there is nothing left to retract
	req = testutil.MakeRequest("DELETE", "/polls/"+pollID+"/vote", nil, nil)
	req.SetPathValue("id", pollID)
	req = req.WithContext(middleware.WithIdentity(req.Context(), identityFor(voter)))
	w = httptest.NewRecorder()

	h.RetractVote(w, req)
	testutil.AssertStatus(t, w, 400)
}

func TestRetractVoteExpiredPoll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewVoteHandler(db, testutil.GetTestConfig())
	creator, _ := testutil.CreateTestUser(t, db, "creator", models.RoleUser)
	voter, _ := testutil.CreateTestUser(t, db, "voter", models.RoleUser)

	past := time.Now().Add(-time.Hour)
	pollID, optionIDs := testutil.CreateTestPoll(t, db, creator.ID, &past, "Red", "Blue")
	testutil.CastTestVote(t, db, pollID, optionIDs[0], voter.ID)

	// Votes on expired polls are frozen
	req := testutil.MakeRequest("DELETE", "/polls/"+pollID+"/vote", nil, nil)
	req.SetPathValue("id", pollID)
	req = req.WithContext(middleware.WithIdentity(req.Context(), identityFor(voter)))
	w := httptest.NewRecorder()

	h.RetractVote(w, req)
	testutil.AssertStatus(t, w, 400)

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM vote WHERE poll_id = $1", pollID).Scan(&count); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected frozen vote to survive, found %d votes", count)
	}
}

func TestRetractVotePollNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewVoteHandler(db, testutil.GetTestConfig())
	voter, _ := testutil.CreateTestUser(t, db, "voter", models.RoleUser)

	req := testutil.MakeRequest("DELETE", "/polls/missing/vote", nil, nil)
	req.SetPathValue("id", "missing")
	req = req.WithContext(middleware.WithIdentity(req.Context(), identityFor(voter)))
	w := httptest.NewRecorder()

	h.RetractVote(w, req)
	testutil.AssertStatus(t, w, 404)
}
