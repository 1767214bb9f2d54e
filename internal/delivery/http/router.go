package http

import (
	"github.com/gin-gonic/gin"
	"github.com/skillforge24/skillforge-backend/internal/delivery/http/handler"
	"github.com/skillforge24/skillforge-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler       *handler.AuthHandler
	profileHandler    *handler.ProfileHandler
	mentorshipHandler *handler.MentorshipHandler
	catalogHandler    *handler.CatalogHandler
	authMiddleware    *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	mentorshipHandler *handler.MentorshipHandler,
	catalogHandler *handler.CatalogHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:       authHandler,
		profileHandler:    profileHandler,
		mentorshipHandler: mentorshipHandler,
		catalogHandler:    catalogHandler,
		authMiddleware:    authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// Registration keeps its legacy path and wire contract.
	router.POST("/api/register", r.authHandler.Register)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Public browsing routes
		v1.GET("/projects", r.catalogHandler.Projects)
		v1.GET("/challenges", r.catalogHandler.Challenges)
		v1.GET("/contributors", r.catalogHandler.Contributors)

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Profile routes
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
				profile.POST("/suggest-bio", r.profileHandler.SuggestBio)
				profile.GET("/:user_id", r.profileHandler.GetProfileByUserID)
			}

			// Mentorship routes
			mentorship := protected.Group("/mentorship")
			{
				mentorship.POST("/requests", r.mentorshipHandler.CreateRequest)
				mentorship.GET("/requests/incoming", r.mentorshipHandler.Incoming)
				mentorship.GET("/requests/outgoing", r.mentorshipHandler.Outgoing)
				mentorship.POST("/requests/:id/accept", r.mentorshipHandler.Accept)
				mentorship.POST("/requests/:id/reject", r.mentorshipHandler.Reject)
			}
		}
	}

	return router
}
