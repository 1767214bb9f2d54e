package store

import (
	"context"
	"sync"

	"github.com/skillforge24/skillforge-backend/internal/domain"
	"github.com/skillforge24/skillforge-backend/internal/logger"
)

// State is the full serialized shape of the game store: the one record the
// snapshotter persists and loads.
type State struct {
	Profiles           map[string]domain.Profile  `json:"profiles"`
	MentorshipRequests []domain.MentorshipRequest `json:"mentorship_requests"`
}

// Snapshotter persists the whole store state under a fixed namespace key.
// Load returns (nil, nil) when no snapshot exists yet.
type Snapshotter interface {
	Save(ctx context.Context, state *State) error
	Load(ctx context.Context) (*State, error)
}

// GameStore holds every profile and the mentorship request ledger. It is the
// sole source of truth for this data while the process runs; every mutation
// synchronously writes a full snapshot through the Snapshotter. A snapshot
// write is retried once and a failure after the retry is logged, not
// propagated: the in-memory mutation stands either way.
type GameStore struct {
	mu       sync.RWMutex
	profiles map[string]domain.Profile
	requests []domain.MentorshipRequest

	snaps Snapshotter
	log   *logger.Logger
}

// New builds a store from seed, then overlays whatever the snapshotter last
// persisted. A load failure falls back to the seed data.
func New(ctx context.Context, seed *State, snaps Snapshotter, log *logger.Logger) *GameStore {
	s := &GameStore{
		profiles: make(map[string]domain.Profile),
		snaps:    snaps,
		log:      log,
	}
	if seed != nil {
		for id, p := range seed.Profiles {
			s.profiles[id] = p
		}
		s.requests = append(s.requests, seed.MentorshipRequests...)
	}

	persisted, err := snaps.Load(ctx)
	if err != nil {
		log.Warn("failed to load game state snapshot, starting from seed", "error", err)
		return s
	}
	if persisted != nil {
		s.profiles = persisted.Profiles
		if s.profiles == nil {
			s.profiles = make(map[string]domain.Profile)
		}
		s.requests = persisted.MentorshipRequests
	}
	return s
}

// GetProfile returns the profile for userID.
func (s *GameStore) GetProfile(userID string) (domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[userID]
	if !ok {
		return domain.Profile{}, domain.ErrProfileNotFound
	}
	return p, nil
}

// Profiles returns a copy of all profiles keyed by user id.
func (s *GameStore) Profiles() map[string]domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.Profile, len(s.profiles))
	for id, p := range s.profiles {
		out[id] = p
	}
	return out
}

// UpdateProfile shallow-merges the set fields of update into the stored
// profile. Unknown user ids fail with ErrProfileNotFound instead of merging
// onto an absent base.
func (s *GameStore) UpdateProfile(ctx context.Context, userID string, update *domain.ProfileUpdate) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[userID]
	if !ok {
		return domain.Profile{}, domain.ErrProfileNotFound
	}
	update.Apply(&p)
	s.profiles[userID] = p

	s.persistLocked(ctx)
	return p, nil
}

// SeedProfile inserts or replaces the profile for its user id. Used when an
// account is created to wire the account record to its game-store entry.
func (s *GameStore) SeedProfile(ctx context.Context, p domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[p.UserID] = p
	s.persistLocked(ctx)
}

// AddRequest appends req to the ledger, preserving insertion order. Duplicate
// ids are rejected rather than silently aliasing under later updates.
func (s *GameStore) AddRequest(ctx context.Context, req domain.MentorshipRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		if s.requests[i].ID == req.ID {
			return domain.ErrDuplicateRequest
		}
	}
	s.requests = append(s.requests, req)

	s.persistLocked(ctx)
	return nil
}

// UpdateRequestStatus transitions the request with the given id through the
// lifecycle state machine. Unknown ids leave the ledger unchanged and fail
// with ErrRequestNotFound.
func (s *GameStore) UpdateRequestStatus(ctx context.Context, requestID string, status domain.RequestStatus) (domain.MentorshipRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		if s.requests[i].ID != requestID {
			continue
		}
		if err := s.requests[i].Transition(status); err != nil {
			return domain.MentorshipRequest{}, err
		}
		s.persistLocked(ctx)
		return s.requests[i], nil
	}
	return domain.MentorshipRequest{}, domain.ErrRequestNotFound
}

// GetRequest returns the request with the given id.
func (s *GameStore) GetRequest(requestID string) (domain.MentorshipRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.requests {
		if s.requests[i].ID == requestID {
			return s.requests[i], nil
		}
	}
	return domain.MentorshipRequest{}, domain.ErrRequestNotFound
}

// Requests returns a copy of the ledger in insertion order.
func (s *GameStore) Requests() []domain.MentorshipRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.MentorshipRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// RequestsForMentor returns the requests addressed to mentorID, in insertion
// order. The ledger keeps no reverse index, consumers scan.
func (s *GameStore) RequestsForMentor(mentorID string) []domain.MentorshipRequest {
	return s.filterRequests(func(r *domain.MentorshipRequest) bool {
		return r.MentorID == mentorID
	})
}

// RequestsForMentee returns the requests initiated by menteeID, in insertion
// order.
func (s *GameStore) RequestsForMentee(menteeID string) []domain.MentorshipRequest {
	return s.filterRequests(func(r *domain.MentorshipRequest) bool {
		return r.MenteeID == menteeID
	})
}

func (s *GameStore) filterRequests(keep func(*domain.MentorshipRequest) bool) []domain.MentorshipRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.MentorshipRequest
	for i := range s.requests {
		if keep(&s.requests[i]) {
			out = append(out, s.requests[i])
		}
	}
	return out
}

// persistLocked writes the current state through the snapshotter, retrying
// once. Callers must hold s.mu.
func (s *GameStore) persistLocked(ctx context.Context) {
	state := &State{
		Profiles:           make(map[string]domain.Profile, len(s.profiles)),
		MentorshipRequests: make([]domain.MentorshipRequest, len(s.requests)),
	}
	for id, p := range s.profiles {
		state.Profiles[id] = p
	}
	copy(state.MentorshipRequests, s.requests)

	err := s.snaps.Save(ctx, state)
	if err == nil {
		return
	}
	if err = s.snaps.Save(ctx, state); err != nil {
		s.log.Warn("game state snapshot failed after retry, in-memory state retained", "error", err)
	}
}
