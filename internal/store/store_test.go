package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skillforge24/skillforge-backend/internal/domain"
	"github.com/skillforge24/skillforge-backend/internal/logger"
)

// --- Mock snapshotter ---

type mockSnapshotter struct {
	saveCalls int
	failSaves int // number of upcoming Save calls to fail
	last      *State

	loadState *State
	loadErr   error
}

func (m *mockSnapshotter) Save(_ context.Context, state *State) error {
	m.saveCalls++
	if m.failSaves > 0 {
		m.failSaves--
		return errors.New("snapshot backend down")
	}
	m.last = state
	return nil
}

func (m *mockSnapshotter) Load(_ context.Context) (*State, error) {
	return m.loadState, m.loadErr
}

func seedJohn() *State {
	return &State{
		Profiles: map[string]domain.Profile{
			"1": {
				ID:     "1",
				UserID: "1",
				Role:   domain.RoleContributor,
				Name:   "John Doe",
				Level:  domain.Level{Current: 5, Experience: 550, NextLevelExperience: 1000},
			},
		},
	}
}

func newTestStore(t *testing.T, seed *State) (*GameStore, *mockSnapshotter) {
	t.Helper()
	snaps := &mockSnapshotter{}
	s := New(context.Background(), seed, snaps, logger.NewNop())
	return s, snaps
}

func pendingRequest(id string) domain.MentorshipRequest {
	return domain.MentorshipRequest{
		ID:        id,
		MentorID:  "2",
		MenteeID:  "1",
		ProjectID: "p1",
		Status:    domain.StatusPending,
		Message:   "Help me",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestUpdateProfileShallowMerge(t *testing.T) {
	s, _ := newTestStore(t, seedJohn())

	bio := "New bio"
	got, err := s.UpdateProfile(context.Background(), "1", &domain.ProfileUpdate{Bio: &bio})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	if got.Name != "John Doe" {
		t.Errorf("name changed: got %q", got.Name)
	}
	if got.Bio != "New bio" {
		t.Errorf("bio not merged: got %q", got.Bio)
	}
	want := domain.Level{Current: 5, Experience: 550, NextLevelExperience: 1000}
	if got.Level != want {
		t.Errorf("level changed: got %+v", got.Level)
	}

	// the merge must be visible through a fresh read
	stored, err := s.GetProfile("1")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if stored.Bio != "New bio" || stored.Name != "John Doe" {
		t.Errorf("stored profile mismatch: %+v", stored)
	}
}

func TestUpdateProfileReplacesLevelWholesale(t *testing.T) {
	s, _ := newTestStore(t, seedJohn())

	got, err := s.UpdateProfile(context.Background(), "1", &domain.ProfileUpdate{
		Level: &domain.Level{Current: 6, Experience: 0, NextLevelExperience: 2000},
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got.Level.Current != 6 || got.Level.Experience != 0 || got.Level.NextLevelExperience != 2000 {
		t.Errorf("level not replaced: %+v", got.Level)
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	s, snaps := newTestStore(t, seedJohn())
	saves := snaps.saveCalls

	name := "Ghost"
	if _, err := s.UpdateProfile(context.Background(), "nope", &domain.ProfileUpdate{Name: &name}); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("want ErrProfileNotFound, got %v", err)
	}
	if snaps.saveCalls != saves {
		t.Error("failed update must not persist")
	}
	if _, ok := s.Profiles()["nope"]; ok {
		t.Error("update on unknown user created an entry")
	}
}

func TestAddRequestPreservesOrder(t *testing.T) {
	s, _ := newTestStore(t, nil)

	for _, id := range []string{"r1", "r2", "r3"} {
		if err := s.AddRequest(context.Background(), pendingRequest(id)); err != nil {
			t.Fatalf("AddRequest(%s): %v", id, err)
		}
	}

	reqs := s.Requests()
	if len(reqs) != 3 {
		t.Fatalf("ledger length = %d, want 3", len(reqs))
	}
	for i, want := range []string{"r1", "r2", "r3"} {
		if reqs[i].ID != want {
			t.Errorf("reqs[%d].ID = %q, want %q", i, reqs[i].ID, want)
		}
	}
	if reqs[0].Status != domain.StatusPending {
		t.Errorf("reqs[0].Status = %q, want pending", reqs[0].Status)
	}
}

func TestAddRequestDuplicateID(t *testing.T) {
	s, _ := newTestStore(t, nil)

	if err := s.AddRequest(context.Background(), pendingRequest("r1")); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := s.AddRequest(context.Background(), pendingRequest("r1")); !errors.Is(err, domain.ErrDuplicateRequest) {
		t.Fatalf("want ErrDuplicateRequest, got %v", err)
	}
	if len(s.Requests()) != 1 {
		t.Errorf("duplicate add changed ledger length")
	}
}

func TestUpdateRequestStatus(t *testing.T) {
	s, _ := newTestStore(t, nil)
	if err := s.AddRequest(context.Background(), pendingRequest("r1")); err != nil {
		t.Fatal(err)
	}

	got, err := s.UpdateRequestStatus(context.Background(), "r1", domain.StatusAccepted)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if got.Status != domain.StatusAccepted {
		t.Errorf("status = %q, want accepted", got.Status)
	}
	if reqs := s.Requests(); reqs[0].Status != domain.StatusAccepted {
		t.Errorf("ledger not updated: %q", reqs[0].Status)
	}

	// unknown id leaves the ledger unchanged
	if _, err := s.UpdateRequestStatus(context.Background(), "unknown", domain.StatusRejected); !errors.Is(err, domain.ErrRequestNotFound) {
		t.Fatalf("want ErrRequestNotFound, got %v", err)
	}
	if reqs := s.Requests(); len(reqs) != 1 || reqs[0].Status != domain.StatusAccepted {
		t.Errorf("ledger changed by unknown-id update: %+v", reqs)
	}
}

func TestUpdateRequestStatusIdempotent(t *testing.T) {
	s, _ := newTestStore(t, nil)
	if err := s.AddRequest(context.Background(), pendingRequest("r1")); err != nil {
		t.Fatal(err)
	}

	if _, err := s.UpdateRequestStatus(context.Background(), "r1", domain.StatusAccepted); err != nil {
		t.Fatalf("first accept: %v", err)
	}
	got, err := s.UpdateRequestStatus(context.Background(), "r1", domain.StatusAccepted)
	if err != nil {
		t.Fatalf("second accept: %v", err)
	}
	if got.Status != domain.StatusAccepted {
		t.Errorf("status = %q after repeated accept", got.Status)
	}
}

func TestUpdateRequestStatusIllegalTransition(t *testing.T) {
	s, _ := newTestStore(t, nil)
	if err := s.AddRequest(context.Background(), pendingRequest("r1")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.UpdateRequestStatus(context.Background(), "r1", domain.StatusAccepted); err != nil {
		t.Fatal(err)
	}

	if _, err := s.UpdateRequestStatus(context.Background(), "r1", domain.StatusRejected); !errors.Is(err, domain.ErrIllegalTransition) {
		t.Fatalf("want ErrIllegalTransition, got %v", err)
	}
	if reqs := s.Requests(); reqs[0].Status != domain.StatusAccepted {
		t.Errorf("illegal transition mutated the ledger: %q", reqs[0].Status)
	}
}

func TestRequestScans(t *testing.T) {
	s, _ := newTestStore(t, nil)
	a := pendingRequest("r1")
	b := pendingRequest("r2")
	b.MentorID = "9"
	for _, r := range []domain.MentorshipRequest{a, b} {
		if err := s.AddRequest(context.Background(), r); err != nil {
			t.Fatal(err)
		}
	}

	if got := s.RequestsForMentor("2"); len(got) != 1 || got[0].ID != "r1" {
		t.Errorf("RequestsForMentor = %+v", got)
	}
	if got := s.RequestsForMentee("1"); len(got) != 2 {
		t.Errorf("RequestsForMentee length = %d, want 2", len(got))
	}
}

func TestMutationsWriteThrough(t *testing.T) {
	s, snaps := newTestStore(t, seedJohn())

	if err := s.AddRequest(context.Background(), pendingRequest("r1")); err != nil {
		t.Fatal(err)
	}
	if snaps.saveCalls != 1 {
		t.Fatalf("saveCalls = %d after add, want 1", snaps.saveCalls)
	}
	if snaps.last == nil || len(snaps.last.MentorshipRequests) != 1 {
		t.Fatalf("snapshot missing request: %+v", snaps.last)
	}
	if _, ok := snaps.last.Profiles["1"]; !ok {
		t.Error("snapshot missing seeded profile")
	}

	bio := "persisted bio"
	if _, err := s.UpdateProfile(context.Background(), "1", &domain.ProfileUpdate{Bio: &bio}); err != nil {
		t.Fatal(err)
	}
	if snaps.saveCalls != 2 {
		t.Errorf("saveCalls = %d after update, want 2", snaps.saveCalls)
	}
	if snaps.last.Profiles["1"].Bio != "persisted bio" {
		t.Errorf("snapshot bio = %q", snaps.last.Profiles["1"].Bio)
	}
}

func TestPersistRetriesOnceAndKeepsState(t *testing.T) {
	snaps := &mockSnapshotter{failSaves: 1}
	s := New(context.Background(), seedJohn(), snaps, logger.NewNop())

	if err := s.AddRequest(context.Background(), pendingRequest("r1")); err != nil {
		t.Fatalf("mutation must not fail on snapshot error: %v", err)
	}
	if snaps.saveCalls != 2 {
		t.Errorf("saveCalls = %d, want 2 (one retry)", snaps.saveCalls)
	}
	// retry succeeded, state landed
	if snaps.last == nil || len(snaps.last.MentorshipRequests) != 1 {
		t.Errorf("retry did not persist state")
	}

	// both attempts failing still leaves the in-memory mutation in place
	snaps.failSaves = 2
	if err := s.AddRequest(context.Background(), pendingRequest("r2")); err != nil {
		t.Fatalf("mutation must survive persistent snapshot failure: %v", err)
	}
	if len(s.Requests()) != 2 {
		t.Errorf("in-memory ledger lost the mutation")
	}
}

func TestSnapshotReplacesSeedOnLoad(t *testing.T) {
	persisted := &State{
		Profiles: map[string]domain.Profile{
			"7": {ID: "7", UserID: "7", Role: domain.RoleContributor, Name: "Restored"},
		},
		MentorshipRequests: []domain.MentorshipRequest{pendingRequest("r9")},
	}
	snaps := &mockSnapshotter{loadState: persisted}
	s := New(context.Background(), seedJohn(), snaps, logger.NewNop())

	if _, err := s.GetProfile("1"); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Error("seed profile survived snapshot overlay")
	}
	p, err := s.GetProfile("7")
	if err != nil || p.Name != "Restored" {
		t.Errorf("restored profile missing: %+v, %v", p, err)
	}
	if reqs := s.Requests(); len(reqs) != 1 || reqs[0].ID != "r9" {
		t.Errorf("restored ledger mismatch: %+v", reqs)
	}
}

func TestLoadFailureFallsBackToSeed(t *testing.T) {
	snaps := &mockSnapshotter{loadErr: errors.New("redis down")}
	s := New(context.Background(), seedJohn(), snaps, logger.NewNop())

	if _, err := s.GetProfile("1"); err != nil {
		t.Errorf("seed data missing after load failure: %v", err)
	}
}
