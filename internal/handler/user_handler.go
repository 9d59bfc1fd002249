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

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers user routes
// (already authenticated by parent middleware)
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", h.List)
		users.GET("/:user_id", h.GetByID)
		users.PUT("/:user_id", h.Update)
		users.DELETE("/:user_id", h.Delete)

		users.GET("/:user_id/favorites", h.ListFavorites)
		users.POST("/:user_id/favorites/:movie_id", h.ToggleFavorite)
	}
}

// List retrieves users with pagination
// GET /api/users?page=1&page_size=20
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	users, total, err := h.userService.ListUsers(page, pageSize)
	if err != nil {
		log.Printf("[user] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      users,
		"page":      page,
		"page_size": pageSize,
		"total":     total,
	})
}

// GetByID retrieves a sanitized user
// GET /api/users/:user_id
func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.userService.GetUser(c.Param("user_id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[user] get failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Update mutates profile fields
// PUT /api/users/:user_id
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(c.Param("user_id"), req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, service.ErrEmailInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[user] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete removes a user account
// DELETE /api/users/:user_id
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Param("user_id")); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[user] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// ToggleFavorite flips the favorite state of (user, movie)
// POST /api/users/:user_id/favorites/:movie_id
func (h *UserHandler) ToggleFavorite(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	favorited, err := h.userService.ToggleFavorite(c.Param("user_id"), movieID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[user] toggle favorite failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not toggle favorite"})
		return
	}

	message := "Movie removed from favorites"
	if favorited {
		message = "Movie added to favorites"
	}

	c.JSON(http.StatusOK, dto.ToggleFavoriteResponse{
		MovieID:   movieID,
		Favorited: favorited,
		Message:   message,
	})
}

// ListFavorites returns the user's favorite movies
// GET /api/users/:user_id/favorites
func (h *UserHandler) ListFavorites(c *gin.Context) {
	movies, err := h.userService.ListFavorites(c.Param("user_id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[user] list favorites failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list favorites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": movies})
}
