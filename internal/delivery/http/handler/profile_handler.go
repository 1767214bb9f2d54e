package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillforge24/skillforge-backend/internal/domain"
	"github.com/skillforge24/skillforge-backend/internal/usecase/profile"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// GetMyProfile returns the authenticated user's game-store profile.
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	p, err := h.profileUseCase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// GetProfileByUserID returns any user's profile for public viewing.
func (h *ProfileHandler) GetProfileByUserID(c *gin.Context) {
	p, err := h.profileUseCase.GetProfile(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdateMyProfile shallow-merges the submitted fields into the profile.
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req profile.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	p, err := h.profileUseCase.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// SuggestBio returns an AI-drafted bio for the edit-profile dialog.
func (h *ProfileHandler) SuggestBio(c *gin.Context) {
	userID := c.GetString("user_id")

	bio, err := h.profileUseCase.SuggestBio(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to generate bio"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bio": bio})
}
