package repository

import (
	"cinehub/internal/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Exists(userID string, movieID int64) (bool, error)
	Add(userID string, movieID int64) error
	Remove(userID string, movieID int64) error
	ListMovies(userID string) ([]models.Movie, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Exists reports whether the (user, movie) pair is currently favorited.
// Set semantics are enforced here at the application level, not by a
// storage constraint.
func (r *favoriteRepository) Exists(userID string, movieID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error
	return count > 0, err
}

func (r *favoriteRepository) Add(userID string, movieID int64) error {
	return r.db.Create(&models.Favorite{UserID: userID, MovieID: movieID}).Error
}

func (r *favoriteRepository) Remove(userID string, movieID int64) error {
	result := r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListMovies returns the movies the user has favorited, oldest first
func (r *favoriteRepository) ListMovies(userID string) ([]models.Movie, error) {
	var movies []models.Movie
	err := r.db.
		Joins("JOIN favorites ON favorites.movie_id = movies.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.added_at ASC").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}
