package service

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"cinehub/internal/dto"
	"cinehub/internal/models"
	"cinehub/internal/repository"
)

var (
	ErrMovieNotFound   = errors.New("movie not found")
	ErrCommentNotFound = errors.New("comment not found")
)

const defaultCommentRating = 3

type MovieService interface {
	CreateMovie(req dto.CreateMovieRequest) (*dto.MovieResponse, error)
	GetMovie(movieID int64) (*dto.MovieResponse, error)
	ListMovies(page, pageSize int) ([]dto.MovieResponse, int64, error)
	UpdateMovie(movieID int64, req dto.UpdateMovieRequest) (*dto.MovieResponse, error)
	DeleteMovie(movieID int64) error
	AddComment(movieID int64, req dto.CreateCommentRequest) (*dto.MovieResponse, error)
	DeleteComment(movieID, commentID int64) (*dto.MovieResponse, error)
}

type movieService struct {
	movieRepo   repository.MovieRepository
	commentRepo repository.CommentRepository
}

func NewMovieService(movieRepo repository.MovieRepository, commentRepo repository.CommentRepository) MovieService {
	return &movieService{
		movieRepo:   movieRepo,
		commentRepo: commentRepo,
	}
}

func (s *movieService) CreateMovie(req dto.CreateMovieRequest) (*dto.MovieResponse, error) {
	movie := &models.Movie{
		Title:    req.Title,
		Genre:    req.Genre,
		Author:   req.Author,
		Rating:   0,
		VideoURL: req.VideoURL,
		ImageURL: req.ImageURL,
	}

	if err := s.movieRepo.Create(movie); err != nil {
		return nil, err
	}

	return dto.FromModelToMovieResponse(movie), nil
}

func (s *movieService) GetMovie(movieID int64) (*dto.MovieResponse, error) {
	movie, err := s.movieRepo.FindByID(movieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return dto.FromModelToMovieResponse(movie), nil
}

func (s *movieService) ListMovies(page, pageSize int) ([]dto.MovieResponse, int64, error) {
	movies, total, err := s.movieRepo.List(page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.MovieResponse, 0, len(movies))
	for i := range movies {
		responses = append(responses, *dto.FromModelToMovieResponse(&movies[i]))
	}
	return responses, total, nil
}

func (s *movieService) UpdateMovie(movieID int64, req dto.UpdateMovieRequest) (*dto.MovieResponse, error) {
	movie, err := s.movieRepo.FindByID(movieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Genre != nil {
		movie.Genre = req.Genre
	}
	if req.Author != nil {
		movie.Author = req.Author
	}
	if req.VideoURL != nil {
		movie.VideoURL = *req.VideoURL
	}
	if req.ImageURL != nil {
		movie.ImageURL = *req.ImageURL
	}

	if err := s.movieRepo.Save(movie); err != nil {
		return nil, err
	}

	return dto.FromModelToMovieResponse(movie), nil
}

func (s *movieService) DeleteMovie(movieID int64) error {
	err := s.movieRepo.Delete(movieID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMovieNotFound
	}
	return err
}

// AddComment appends a comment to the movie and synchronously restores the
// rating invariant: movie.rating = round(mean(comment ratings), 2).
func (s *movieService) AddComment(movieID int64, req dto.CreateCommentRequest) (*dto.MovieResponse, error) {
	if _, err := s.movieRepo.FindByID(movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		MovieID: movieID,
		Author:  req.Author,
		Content: req.Content,
		Rating:  clampRating(req.Rating),
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	if err := s.recomputeRating(movieID); err != nil {
		return nil, err
	}

	return s.GetMovie(movieID)
}

// DeleteComment removes a comment and restores the rating invariant. When the
// last comment goes, the rating resets to exactly 0. Survivors keep their
// insertion order.
func (s *movieService) DeleteComment(movieID, commentID int64) (*dto.MovieResponse, error) {
	if _, err := s.movieRepo.FindByID(movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	if err := s.commentRepo.Delete(movieID, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	if err := s.recomputeRating(movieID); err != nil {
		return nil, err
	}

	return s.GetMovie(movieID)
}

// recomputeRating rewrites the derived rating column after a comment
// mutation. Not transactional with the mutation itself; two concurrent
// writers to the same movie can race (accepted limitation).
func (s *movieService) recomputeRating(movieID int64) error {
	count, err := s.commentRepo.CountByMovie(movieID)
	if err != nil {
		return err
	}

	rating := 0.0
	if count > 0 {
		avg, err := s.commentRepo.AverageRating(movieID)
		if err != nil {
			return err
		}
		rating = roundTo2(avg)
	}

	return s.movieRepo.UpdateRating(movieID, rating)
}

// clampRating coerces arbitrary numeric input into the closed range [1,5].
// nil means the caller omitted the rating and gets the default of 3.
// Out-of-range values are capped, not rejected.
func clampRating(input *float64) int {
	if input == nil {
		return defaultCommentRating
	}
	rating := int(math.Round(*input))
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
