package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"cinehub/internal/dto"
	"cinehub/internal/service"
)

func TestToggleFavorite_Added(t *testing.T) {
	mockUserService := new(MockUserService)
	handler := NewUserHandler(mockUserService)
	router := setupRouter()
	router.POST("/users/:user_id/favorites/:movie_id", handler.ToggleFavorite)

	mockUserService.On("ToggleFavorite", "user-123", int64(42)).Return(true, nil)

	req, _ := http.NewRequest("POST", "/users/user-123/favorites/42", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ToggleFavoriteResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, int64(42), response.MovieID)
	assert.True(t, response.Favorited)
	assert.Equal(t, "Movie added to favorites", response.Message)

	mockUserService.AssertExpectations(t)
}

func TestToggleFavorite_Removed(t *testing.T) {
	mockUserService := new(MockUserService)
	handler := NewUserHandler(mockUserService)
	router := setupRouter()
	router.POST("/users/:user_id/favorites/:movie_id", handler.ToggleFavorite)

	mockUserService.On("ToggleFavorite", "user-123", int64(42)).Return(false, nil)

	req, _ := http.NewRequest("POST", "/users/user-123/favorites/42", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ToggleFavoriteResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.False(t, response.Favorited)
	assert.Equal(t, "Movie removed from favorites", response.Message)

	mockUserService.AssertExpectations(t)
}

func TestToggleFavorite_MovieNotFound(t *testing.T) {
	mockUserService := new(MockUserService)
	handler := NewUserHandler(mockUserService)
	router := setupRouter()
	router.POST("/users/:user_id/favorites/:movie_id", handler.ToggleFavorite)

	mockUserService.On("ToggleFavorite", "user-123", int64(99)).
		Return(false, service.ErrMovieNotFound)

	req, _ := http.NewRequest("POST", "/users/user-123/favorites/99", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUserService.AssertExpectations(t)
}

func TestToggleFavorite_InvalidMovieID(t *testing.T) {
	mockUserService := new(MockUserService)
	handler := NewUserHandler(mockUserService)
	router := setupRouter()
	router.POST("/users/:user_id/favorites/:movie_id", handler.ToggleFavorite)

	req, _ := http.NewRequest("POST", "/users/user-123/favorites/abc", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUserService.AssertNotCalled(t, "ToggleFavorite")
}

func TestListFavorites_Success(t *testing.T) {
	mockUserService := new(MockUserService)
	handler := NewUserHandler(mockUserService)
	router := setupRouter()
	router.GET("/users/:user_id/favorites", handler.ListFavorites)

	mockUserService.On("ListFavorites", "user-123").
		Return([]dto.MovieResponse{{ID: 42, Title: "Inception"}}, nil)

	req, _ := http.NewRequest("GET", "/users/user-123/favorites", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []dto.MovieResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response.Data, 1)
	assert.Equal(t, "Inception", response.Data[0].Title)

	mockUserService.AssertExpectations(t)
}

func TestDeleteUser_NotFound(t *testing.T) {
	mockUserService := new(MockUserService)
	handler := NewUserHandler(mockUserService)
	router := setupRouter()
	router.DELETE("/users/:user_id", handler.Delete)

	mockUserService.On("DeleteUser", "ghost").Return(service.ErrUserNotFound)

	req, _ := http.NewRequest("DELETE", "/users/ghost", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUserService.AssertExpectations(t)
}
