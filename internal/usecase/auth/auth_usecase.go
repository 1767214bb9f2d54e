package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/skillforge24/skillforge-backend/internal/domain"
	"github.com/skillforge24/skillforge-backend/internal/logger"
	"github.com/skillforge24/skillforge-backend/internal/repository"
	"github.com/skillforge24/skillforge-backend/internal/store"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// ErrValidation wraps field-level validation failures so handlers can map
// them to 400 without inspecting validator internals.
var ErrValidation = errors.New("validation failed")

type AuthUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	gameStore   *store.GameStore
	jwtSecret   string
	tokenTTL    time.Duration
	validate    *validator.Validate
	log         *logger.Logger
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	gameStore *store.GameStore,
	jwtSecret string,
	tokenTTL time.Duration,
	log *logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		gameStore:   gameStore,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		validate:    validator.New(),
		log:         log,
	}
}

// UserInfo is the credential-free view of an account returned to clients.
type UserInfo struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// AuthResult carries a successful login.
type AuthResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      UserInfo  `json:"user"`
}

// Register creates the durable account record and seeds its game-store
// profile. Returns the new user id.
func (uc *AuthUseCase) Register(ctx context.Context, reg Registration) (string, error) {
	if err := uc.validate.Struct(reg); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password()), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := reg.newUser()
	user.ID = uuid.NewString()
	user.PasswordHash = string(hash)

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	uc.gameStore.SeedProfile(ctx, starterProfile(user))
	uc.log.Info("user registered", "user_id", user.ID, "role", user.Role)

	return user.ID, nil
}

// starterProfile is the game-store entry a fresh account begins with. The
// original application never created one at registration; the dashboard then
// read a hole. Seeding here closes that gap.
func starterProfile(user *domain.User) domain.Profile {
	return domain.Profile{
		ID:           user.ID,
		UserID:       user.ID,
		Role:         user.Role,
		Name:         user.Name,
		Skills:       user.Skills,
		Achievements: []domain.Achievement{},
		Badges:       []domain.Badge{},
		Level:        domain.Level{Current: 1, Experience: 0, NextLevelExperience: 100},
	}
}

// Login checks the password against the stored bcrypt hash and issues an
// HS256 JWT with a revocable session entry.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	tokenID := uuid.NewString()
	expiresAt := time.Now().Add(uc.tokenTTL)

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"jti":  tokenID,
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	if err := uc.sessionRepo.Create(ctx, tokenID, user.ID, uc.tokenTTL); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &AuthResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User: UserInfo{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}

// ValidateToken parses and verifies a JWT and checks its session has not been
// revoked. Returns the user id and role.
func (uc *AuthUseCase) ValidateToken(ctx context.Context, tokenString string) (string, domain.Role, error) {
	claims, err := uc.parseClaims(tokenString)
	if err != nil {
		return "", "", err
	}

	tokenID, _ := claims["jti"].(string)
	alive, err := uc.sessionRepo.Exists(ctx, tokenID)
	if err != nil {
		return "", "", fmt.Errorf("failed to check session: %w", err)
	}
	if !alive {
		return "", "", domain.ErrInvalidCredentials
	}

	userID, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	return userID, domain.Role(role), nil
}

// Logout revokes the token's session. Already-expired tokens are fine; the
// session entry has simply evaporated.
func (uc *AuthUseCase) Logout(ctx context.Context, tokenString string) error {
	claims, err := uc.parseClaims(tokenString)
	if err != nil {
		return err
	}
	tokenID, _ := claims["jti"].(string)
	return uc.sessionRepo.Delete(ctx, tokenID)
}

// GetUser returns the credential-free account view for userID.
func (uc *AuthUseCase) GetUser(ctx context.Context, userID string) (*UserInfo, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UserInfo{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (uc *AuthUseCase) parseClaims(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidCredentials
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return claims, nil
}
