package mentorship

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/skillforge24/skillforge-backend/internal/domain"
	"github.com/skillforge24/skillforge-backend/internal/logger"
	"github.com/skillforge24/skillforge-backend/internal/store"
)

// ErrNotMentor is returned when someone other than the addressed mentor tries
// to accept or reject a request.
var ErrNotMentor = errors.New("only the addressed mentor may act on a request")

type MentorshipUseCase struct {
	gameStore *store.GameStore
	log       *logger.Logger
}

func NewMentorshipUseCase(gameStore *store.GameStore, log *logger.Logger) *MentorshipUseCase {
	return &MentorshipUseCase{
		gameStore: gameStore,
		log:       log,
	}
}

// CreateRequestInput carries a mentee's solicitation. The message minimum
// mirrors the edge validation of the request dialog.
type CreateRequestInput struct {
	MentorID  string `json:"mentor_id" binding:"required"`
	ProjectID string `json:"project_id" binding:"required"`
	Message   string `json:"message" binding:"required,min=20,max=2000"`
}

// CreateRequest appends a pending request to the ledger. The id is generated
// here rather than accepted from the caller; timestamp-derived client ids
// collide.
func (uc *MentorshipUseCase) CreateRequest(ctx context.Context, menteeID string, in *CreateRequestInput) (domain.MentorshipRequest, error) {
	req := domain.MentorshipRequest{
		ID:        uuid.NewString(),
		MentorID:  in.MentorID,
		MenteeID:  menteeID,
		ProjectID: in.ProjectID,
		Status:    domain.StatusPending,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.gameStore.AddRequest(ctx, req); err != nil {
		return domain.MentorshipRequest{}, err
	}

	uc.log.Info("mentorship request created",
		"request_id", req.ID, "mentor_id", req.MentorID, "mentee_id", req.MenteeID)
	return req, nil
}

// Accept moves a pending request to accepted. Only the addressed mentor may
// accept it.
func (uc *MentorshipUseCase) Accept(ctx context.Context, actorID, requestID string) (domain.MentorshipRequest, error) {
	return uc.resolve(ctx, actorID, requestID, domain.StatusAccepted)
}

// Reject moves a pending request to rejected.
func (uc *MentorshipUseCase) Reject(ctx context.Context, actorID, requestID string) (domain.MentorshipRequest, error) {
	return uc.resolve(ctx, actorID, requestID, domain.StatusRejected)
}

func (uc *MentorshipUseCase) resolve(ctx context.Context, actorID, requestID string, status domain.RequestStatus) (domain.MentorshipRequest, error) {
	req, err := uc.gameStore.GetRequest(requestID)
	if err != nil {
		return domain.MentorshipRequest{}, err
	}
	if req.MentorID != actorID {
		return domain.MentorshipRequest{}, ErrNotMentor
	}
	return uc.gameStore.UpdateRequestStatus(ctx, requestID, status)
}

// Incoming lists requests addressed to the mentor, oldest first.
func (uc *MentorshipUseCase) Incoming(ctx context.Context, mentorID string) []domain.MentorshipRequest {
	return uc.gameStore.RequestsForMentor(mentorID)
}

// Outgoing lists requests the mentee has sent, oldest first.
func (uc *MentorshipUseCase) Outgoing(ctx context.Context, menteeID string) []domain.MentorshipRequest {
	return uc.gameStore.RequestsForMentee(menteeID)
}
