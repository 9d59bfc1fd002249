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

type MovieHandler struct {
	movieService service.MovieService
}

func NewMovieHandler(movieService service.MovieService) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

// RegisterPublicRoutes registers the read-only movie routes
func (h *MovieHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	{
		movies.GET("", h.List)
		movies.GET("/:movie_id", h.GetByID)
	}
}

// RegisterProtectedRoutes registers the write routes
// (already authenticated by parent middleware)
func (h *MovieHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	{
		movies.POST("", h.Create)
		movies.PUT("/:movie_id", h.Update)
		movies.DELETE("/:movie_id", h.Delete)

		movies.POST("/:movie_id/comments", h.AddComment)
		movies.DELETE("/:movie_id/comments/:comment_id", h.DeleteComment)
	}
}

// Create creates a new movie
// POST /api/movies
func (h *MovieHandler) Create(c *gin.Context) {
	var req dto.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie, err := h.movieService.CreateMovie(req)
	if err != nil {
		log.Printf("[movie] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create movie"})
		return
	}

	c.JSON(http.StatusCreated, movie)
}

// GetByID retrieves a movie with its comments
// GET /api/movies/:movie_id
func (h *MovieHandler) GetByID(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	movie, err := h.movieService.GetMovie(movieID)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[movie] get failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load movie"})
		return
	}

	c.JSON(http.StatusOK, movie)
}

// List retrieves movies with pagination
// GET /api/movies?page=1&page_size=20
func (h *MovieHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	movies, total, err := h.movieService.ListMovies(page, pageSize)
	if err != nil {
		log.Printf("[movie] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list movies"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      movies,
		"page":      page,
		"page_size": pageSize,
		"total":     total,
	})
}

// Update mutates movie fields (never the derived rating)
// PUT /api/movies/:movie_id
func (h *MovieHandler) Update(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	var req dto.UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie, err := h.movieService.UpdateMovie(movieID, req)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[movie] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update movie"})
		return
	}

	c.JSON(http.StatusOK, movie)
}

// Delete removes a movie and its comments
// DELETE /api/movies/:movie_id
func (h *MovieHandler) Delete(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	if err := h.movieService.DeleteMovie(movieID); err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[movie] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete movie"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Movie deleted successfully"})
}

// AddComment appends a comment and returns the movie with its new rating
// POST /api/movies/:movie_id/comments
func (h *MovieHandler) AddComment(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie, err := h.movieService.AddComment(movieID, req)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[movie] add comment failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add comment"})
		return
	}

	c.JSON(http.StatusCreated, movie)
}

// DeleteComment removes a comment and returns the movie with its new rating
// DELETE /api/movies/:movie_id/comments/:comment_id
func (h *MovieHandler) DeleteComment(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	movie, err := h.movieService.DeleteComment(movieID, commentID)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) || errors.Is(err, service.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[movie] delete comment failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete comment"})
		return
	}

	c.JSON(http.StatusOK, movie)
}
