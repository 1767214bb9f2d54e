package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skillforge24/skillforge-backend/internal/domain"
	"github.com/skillforge24/skillforge-backend/internal/usecase/auth"
)

type AuthHandler struct {
	authUseCase *auth.AuthUseCase
}

func NewAuthHandler(authUseCase *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// RegisterRequest is the flat wire shape of POST /api/register; the role tag
// decides which fields are read.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`

	// contributor fields
	Name       string `json:"name"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`

	// hirer fields
	CompanyName string `json:"companyName"`
	Industry    string `json:"industry"`
	Website     string `json:"website"`
}

// RegisterResponse is the success body of POST /api/register.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// MessageResponse is the failure body of POST /api/register.
type MessageResponse struct {
	Message string `json:"message"`
}

// Register handles POST /api/register: 201 on success, 400 for missing
// fields or an unknown role, 409 for a duplicate email, 500 otherwise.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "Missing required fields"})
		return
	}
	if req.Email == "" || req.Password == "" || req.Role == "" {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "Missing required fields"})
		return
	}

	var reg auth.Registration
	switch domain.Role(req.Role) {
	case domain.RoleContributor:
		reg = &auth.ContributorRegistration{
			Name:        req.Name,
			EmailAddr:   req.Email,
			RawPassword: req.Password,
			Skills:      req.Skills,
			Experience:  req.Experience,
		}
	case domain.RoleHirer:
		reg = &auth.HirerRegistration{
			CompanyName: req.CompanyName,
			EmailAddr:   req.Email,
			RawPassword: req.Password,
			Industry:    req.Industry,
			Website:     req.Website,
		}
	default:
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid role"})
		return
	}

	userID, err := h.authUseCase.Register(c.Request.Context(), reg)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, MessageResponse{Message: "User already exists"})
		case errors.Is(err, auth.ErrValidation):
			c.JSON(http.StatusBadRequest, MessageResponse{Message: "Missing required fields"})
		default:
			c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		Message: "User registered successfully",
		UserID:  userID,
	})
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles email/password authentication and returns a JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "login failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Logout revokes the current session.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authorization token"})
		return
	}

	if err := h.authUseCase.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "logout failed"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "logged out successfully"})
}

// Me returns the authenticated user's account info.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.authUseCase.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Message string `json:"message"`
}
