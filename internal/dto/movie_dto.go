package dto

import (
	"time"

	"cinehub/internal/models"
)

// CreateMovieRequest for creating a movie
type CreateMovieRequest struct {
	Title    string  `json:"title" binding:"required,min=1,max=200"`
	Genre    *string `json:"genre,omitempty"`
	Author   *string `json:"author,omitempty"`
	VideoURL string  `json:"video_url" binding:"required,url"`
	ImageURL string  `json:"image_url" binding:"required,url"`
}

// UpdateMovieRequest for updating a movie. Rating is absent on purpose:
// it is derived from comments and cannot be written directly.
type UpdateMovieRequest struct {
	Title    *string `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Genre    *string `json:"genre,omitempty"`
	Author   *string `json:"author,omitempty"`
	VideoURL *string `json:"video_url,omitempty" binding:"omitempty,url"`
	ImageURL *string `json:"image_url,omitempty" binding:"omitempty,url"`
}

// CommentResponse for returning comment information
type CommentResponse struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// MovieResponse for returning movie information with its comments
type MovieResponse struct {
	ID        int64             `json:"id"`
	Title     string            `json:"title"`
	Genre     *string           `json:"genre,omitempty"`
	Author    *string           `json:"author,omitempty"`
	Rating    float64           `json:"rating"`
	VideoURL  string            `json:"video_url"`
	ImageURL  string            `json:"image_url"`
	Comments  []CommentResponse `json:"comments"`
	CreatedAt time.Time         `json:"created_at"`
}

// FromModelToCommentResponse converts a Comment model to CommentResponse DTO
func FromModelToCommentResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        comment.ID,
		Author:    comment.Author,
		Content:   comment.Content,
		Rating:    comment.Rating,
		CreatedAt: comment.CreatedAt,
	}
}

// FromModelToMovieResponse converts a Movie model to MovieResponse DTO
func FromModelToMovieResponse(movie *models.Movie) *MovieResponse {
	comments := make([]CommentResponse, 0, len(movie.Comments))
	for i := range movie.Comments {
		comments = append(comments, *FromModelToCommentResponse(&movie.Comments[i]))
	}

	return &MovieResponse{
		ID:        movie.ID,
		Title:     movie.Title,
		Genre:     movie.Genre,
		Author:    movie.Author,
		Rating:    movie.Rating,
		VideoURL:  movie.VideoURL,
		ImageURL:  movie.ImageURL,
		Comments:  comments,
		CreatedAt: movie.CreatedAt,
	}
}
