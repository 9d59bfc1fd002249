package repository

import (
	"cinehub/internal/models"

	"gorm.io/gorm"
)

type MovieRepository interface {
	Create(movie *models.Movie) error
	FindByID(id int64) (*models.Movie, error)
	List(page, pageSize int) ([]models.Movie, int64, error)
	Save(movie *models.Movie) error
	Delete(id int64) error
	ExistsByVideoURL(videoURL string) (bool, error)
	UpdateRating(id int64, rating float64) error
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

// Create a new movie
func (r *movieRepository) Create(movie *models.Movie) error {
	return r.db.Create(movie).Error
}

// FindByID retrieves a movie with its comments in insertion order
func (r *movieRepository) FindByID(id int64) (*models.Movie, error) {
	var movie models.Movie
	err := r.db.
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.id ASC")
		}).
		First(&movie, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// List retrieves movies with pagination (comments not preloaded)
func (r *movieRepository) List(page, pageSize int) ([]models.Movie, int64, error) {
	var movies []models.Movie
	var total int64

	if err := r.db.Model(&models.Movie{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&movies).Error
	if err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

// Save persists changes to an existing movie
func (r *movieRepository) Save(movie *models.Movie) error {
	return r.db.Save(movie).Error
}

// Delete removes a movie and, via FK cascade, its comments
func (r *movieRepository) Delete(id int64) error {
	result := r.db.Where("id = ?", id).Delete(&models.Movie{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExistsByVideoURL reports whether a movie with the exact video URL exists.
// Exact string equality is the import dedup key.
func (r *movieRepository) ExistsByVideoURL(videoURL string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Movie{}).
		Where("video_url = ?", videoURL).
		Count(&count).Error
	return count > 0, err
}

// UpdateRating writes only the derived rating column
func (r *movieRepository) UpdateRating(id int64, rating float64) error {
	return r.db.Model(&models.Movie{}).
		Where("id = ?", id).
		Update("rating", rating).Error
}
