package domain

import "time"

// RequestStatus is the mentorship request lifecycle state.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusAccepted RequestStatus = "accepted"
	StatusRejected RequestStatus = "rejected"
)

func (s RequestStatus) Valid() bool {
	return s == StatusPending || s == StatusAccepted || s == StatusRejected
}

// Terminal reports whether no further transition is allowed out of s.
func (s RequestStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// MentorshipRequest is a mentee-to-mentor solicitation. Mentor, mentee and
// project ids are foreign references and are not validated for existence.
// CreatedAt is immutable; requests are never deleted.
type MentorshipRequest struct {
	ID        string        `json:"id"`
	MentorID  string        `json:"mentor_id"`
	MenteeID  string        `json:"mentee_id"`
	ProjectID string        `json:"project_id"`
	Status    RequestStatus `json:"status"`
	Message   string        `json:"message"`
	CreatedAt time.Time     `json:"created_at"`
}

// Transition moves the request to target. Re-applying the status a request
// already has succeeds without change, so accept/reject stay idempotent. Any
// other move out of a terminal state, and any move to pending, fails with
// ErrIllegalTransition.
func (r *MentorshipRequest) Transition(target RequestStatus) error {
	if target == r.Status {
		return nil
	}
	if target != StatusAccepted && target != StatusRejected {
		return ErrIllegalTransition
	}
	if r.Status.Terminal() {
		return ErrIllegalTransition
	}
	r.Status = target
	return nil
}
