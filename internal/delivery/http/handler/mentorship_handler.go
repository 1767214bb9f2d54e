package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillforge24/skillforge-backend/internal/domain"
	"github.com/skillforge24/skillforge-backend/internal/usecase/mentorship"
)

type MentorshipHandler struct {
	mentorshipUseCase *mentorship.MentorshipUseCase
}

func NewMentorshipHandler(mentorshipUseCase *mentorship.MentorshipUseCase) *MentorshipHandler {
	return &MentorshipHandler{
		mentorshipUseCase: mentorshipUseCase,
	}
}

// CreateRequest submits a new mentorship request from the authenticated user.
func (h *MentorshipHandler) CreateRequest(c *gin.Context) {
	menteeID := c.GetString("user_id")

	var in mentorship.CreateRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "message must be at least 20 characters"})
		return
	}

	req, err := h.mentorshipUseCase.CreateRequest(c.Request.Context(), menteeID, &in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateRequest) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "request already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create request"})
		return
	}

	c.JSON(http.StatusCreated, req)
}

// Incoming lists requests addressed to the authenticated mentor.
func (h *MentorshipHandler) Incoming(c *gin.Context) {
	mentorID := c.GetString("user_id")
	c.JSON(http.StatusOK, gin.H{"requests": h.mentorshipUseCase.Incoming(c.Request.Context(), mentorID)})
}

// Outgoing lists requests the authenticated mentee has sent.
func (h *MentorshipHandler) Outgoing(c *gin.Context) {
	menteeID := c.GetString("user_id")
	c.JSON(http.StatusOK, gin.H{"requests": h.mentorshipUseCase.Outgoing(c.Request.Context(), menteeID)})
}

// Accept resolves a pending request as accepted.
func (h *MentorshipHandler) Accept(c *gin.Context) {
	h.resolve(c, h.mentorshipUseCase.Accept)
}

// Reject resolves a pending request as rejected.
func (h *MentorshipHandler) Reject(c *gin.Context) {
	h.resolve(c, h.mentorshipUseCase.Reject)
}

func (h *MentorshipHandler) resolve(c *gin.Context, fn func(ctx context.Context, actorID, requestID string) (domain.MentorshipRequest, error)) {
	actorID := c.GetString("user_id")
	requestID := c.Param("id")

	req, err := fn(c.Request.Context(), actorID, requestID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "request not found"})
		case errors.Is(err, domain.ErrIllegalTransition):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "request already resolved"})
		case errors.Is(err, mentorship.ErrNotMentor):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "only the addressed mentor may act on this request"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update request"})
		}
		return
	}

	c.JSON(http.StatusOK, req)
}
