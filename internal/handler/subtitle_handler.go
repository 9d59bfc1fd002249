package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cinehub/internal/dto"
	"cinehub/internal/service"
	"cinehub/internal/subtitles"
)

type SubtitleHandler struct {
	subtitleService *subtitles.Service
	movieService    service.MovieService
}

func NewSubtitleHandler(subtitleService *subtitles.Service, movieService service.MovieService) *SubtitleHandler {
	return &SubtitleHandler{
		subtitleService: subtitleService,
		movieService:    movieService,
	}
}

// List returns the caption tracks found for a movie; an empty list when
// none exist. The list is computed per request, never stored.
// GET /api/movies/:movie_id/subtitles
func (h *SubtitleHandler) List(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	if _, err := h.movieService.GetMovie(movieID); err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[subtitles] movie lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load movie"})
		return
	}

	tracks, err := h.subtitleService.ListTracks(movieID)
	if err != nil {
		log.Printf("[subtitles] scan failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list subtitles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": tracks})
}

// Generate materializes caption files via the transcription API, then
// returns the updated track list. Slow: bounded only by the request context.
// POST /api/movies/:movie_id/subtitles
func (h *SubtitleHandler) Generate(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	var req dto.GenerateSubtitlesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie, err := h.movieService.GetMovie(movieID)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[subtitles] movie lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load movie"})
		return
	}

	tracks, err := h.subtitleService.Generate(c.Request.Context(), movieID, movie.VideoURL, req.Languages)
	if err != nil {
		if errors.Is(err, subtitles.ErrTranscriptionDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "subtitle generation is not available"})
			return
		}
		log.Printf("[subtitles] generation failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "subtitle generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": tracks})
}
