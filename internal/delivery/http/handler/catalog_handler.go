package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillforge24/skillforge-backend/internal/usecase/catalog"
)

type CatalogHandler struct {
	catalogUseCase *catalog.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

// Projects lists projects, optionally filtered by ?q= and ?category=.
func (h *CatalogHandler) Projects(c *gin.Context) {
	projects := h.catalogUseCase.Projects(c.Query("q"), c.Query("category"))
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// Challenges lists challenges, optionally filtered by ?q= and ?difficulty=.
func (h *CatalogHandler) Challenges(c *gin.Context) {
	challenges := h.catalogUseCase.Challenges(c.Query("q"), c.Query("difficulty"))
	c.JSON(http.StatusOK, gin.H{"challenges": challenges})
}

// Contributors lists featured contributors, optionally filtered by ?q=.
func (h *CatalogHandler) Contributors(c *gin.Context) {
	contributors := h.catalogUseCase.Contributors(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"contributors": contributors})
}
