package profile

import (
	"context"
	"fmt"

	"github.com/skillforge24/skillforge-backend/internal/domain"
	"github.com/skillforge24/skillforge-backend/internal/infrastructure/gemini"
	"github.com/skillforge24/skillforge-backend/internal/store"
)

type ProfileUseCase struct {
	gameStore    *store.GameStore
	geminiClient *gemini.GeminiClient
}

func NewProfileUseCase(gameStore *store.GameStore, geminiClient *gemini.GeminiClient) *ProfileUseCase {
	return &ProfileUseCase{
		gameStore:    gameStore,
		geminiClient: geminiClient,
	}
}

// UpdateProfileRequest represents a partial profile update. Role is absent on
// purpose: role changes are not supported.
type UpdateProfileRequest struct {
	Name     *string       `json:"name" binding:"omitempty,min=2,max=100"`
	Bio      *string       `json:"bio" binding:"omitempty,min=10,max=500"`
	Avatar   *string       `json:"avatar" binding:"omitempty,url"`
	Location *string       `json:"location" binding:"omitempty,min=2,max=100"`
	Website  *string       `json:"website" binding:"omitempty,url"`
	GitHub   *string       `json:"github" binding:"omitempty,max=100"`
	LinkedIn *string       `json:"linkedin" binding:"omitempty,max=100"`
	Twitter  *string       `json:"twitter" binding:"omitempty,max=100"`
	Skills   *[]string     `json:"skills" binding:"omitempty,max=20"`
	Level    *domain.Level `json:"level"`
}

// GetProfile returns the game-store profile for userID.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	return uc.gameStore.GetProfile(userID)
}

// UpdateProfile shallow-merges the provided fields into the stored profile.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (domain.Profile, error) {
	update := &domain.ProfileUpdate{
		Name:     req.Name,
		Bio:      req.Bio,
		Avatar:   req.Avatar,
		Location: req.Location,
		Website:  req.Website,
		GitHub:   req.GitHub,
		LinkedIn: req.LinkedIn,
		Twitter:  req.Twitter,
		Skills:   req.Skills,
		Level:    req.Level,
	}
	return uc.gameStore.UpdateProfile(ctx, userID, update)
}

// SuggestBio asks Gemini for a bio draft based on the stored profile.
func (uc *ProfileUseCase) SuggestBio(ctx context.Context, userID string) (string, error) {
	if uc.geminiClient == nil {
		return "", fmt.Errorf("gemini client is not initialized")
	}
	p, err := uc.gameStore.GetProfile(userID)
	if err != nil {
		return "", err
	}
	return uc.geminiClient.SuggestBio(ctx, p.Name, p.Skills, p.Location)
}
