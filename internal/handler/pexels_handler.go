package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cinehub/internal/dto"
	"cinehub/internal/service"
)

type PexelsHandler struct {
	importService service.ImportService
}

func NewPexelsHandler(importService service.ImportService) *PexelsHandler {
	return &PexelsHandler{importService: importService}
}

// RegisterRoutes registers Pexels routes
// (already authenticated by parent middleware)
func (h *PexelsHandler) RegisterRoutes(router *gin.RouterGroup) {
	pexels := router.Group("/pexels")
	{
		pexels.GET("/photos", h.SearchPhotos)
		pexels.GET("/videos", h.SearchVideos)
		pexels.POST("/import", h.Import)
	}
}

// SearchPhotos proxies the Pexels photo search
// GET /api/pexels/photos?query=ocean&per_page=15
func (h *PexelsHandler) SearchPhotos(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.importService.SearchPhotos(c.Request.Context(), query, perPage)
	if err != nil {
		h.upstreamError(c, "photo search", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchVideos proxies the Pexels video search
// GET /api/pexels/videos?query=ocean&per_page=15
func (h *PexelsHandler) SearchVideos(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.importService.SearchVideos(c.Request.Context(), query, perPage)
	if err != nil {
		h.upstreamError(c, "video search", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Import bulk-imports Pexels videos as movies
// POST /api/pexels/import
func (h *PexelsHandler) Import(c *gin.Context) {
	var req dto.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.importService.Import(c.Request.Context(), req.Query, req.PerPage)
	if err != nil {
		h.upstreamError(c, "import", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// upstreamError hides upstream detail from the caller but keeps it in the log
func (h *PexelsHandler) upstreamError(c *gin.Context, op string, err error) {
	if errors.Is(err, service.ErrPexelsDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media search is not available"})
		return
	}
	log.Printf("[pexels] %s failed: %v", op, err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "media search service failed"})
}
