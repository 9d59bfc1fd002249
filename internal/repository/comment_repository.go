package repository

import (
	"cinehub/internal/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	Delete(movieID, commentID int64) error
	ListByMovie(movieID int64) ([]models.Comment, error)
	AverageRating(movieID int64) (float64, error)
	CountByMovie(movieID int64) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create a new comment
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// Delete removes a comment from a movie. Deleting an id that is already
// gone reports not found rather than silently succeeding.
func (r *commentRepository) Delete(movieID, commentID int64) error {
	result := r.db.Where("id = ? AND movie_id = ?", commentID, movieID).Delete(&models.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByMovie retrieves all comments for a movie in insertion order
func (r *commentRepository) ListByMovie(movieID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("movie_id = ?", movieID).
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// AverageRating calculates the mean comment rating for a movie,
// 0 when the movie has no comments
func (r *commentRepository) AverageRating(movieID int64) (float64, error) {
	var avg struct {
		Average float64
	}

	err := r.db.Model(&models.Comment{}).
		Select("COALESCE(AVG(rating), 0) as average").
		Where("movie_id = ?", movieID).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}

	return avg.Average, nil
}

// CountByMovie counts the comments on a movie
func (r *commentRepository) CountByMovie(movieID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("movie_id = ?", movieID).Count(&count).Error
	return count, err
}
