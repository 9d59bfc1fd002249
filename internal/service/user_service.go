package service

import (
	"errors"

	"gorm.io/gorm"

	"cinehub/internal/dto"
	"cinehub/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

type UserService interface {
	GetUser(userID string) (*dto.UserResponse, error)
	ListUsers(page, pageSize int) ([]dto.UserResponse, int64, error)
	UpdateUser(userID string, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(userID string) error
	ToggleFavorite(userID string, movieID int64) (favorited bool, err error)
	ListFavorites(userID string) ([]dto.MovieResponse, error)
}

type userService struct {
	userRepo     repository.UserRepository
	movieRepo    repository.MovieRepository
	favoriteRepo repository.FavoriteRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	movieRepo repository.MovieRepository,
	favoriteRepo repository.FavoriteRepository,
) UserService {
	return &userService{
		userRepo:     userRepo,
		movieRepo:    movieRepo,
		favoriteRepo: favoriteRepo,
	}
}

func (s *userService) GetUser(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return dto.FromModelToUserResponse(user), nil
}

func (s *userService) ListUsers(page, pageSize int) ([]dto.UserResponse, int64, error) {
	users, total, err := s.userRepo.List(page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *dto.FromModelToUserResponse(&users[i]))
	}
	return responses, total, nil
}

func (s *userService) UpdateUser(userID string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Age != nil {
		user.Age = *req.Age
	}
	if req.Email != nil && *req.Email != user.Email {
		// new address must not belong to another account
		if _, err := s.userRepo.FindByEmail(*req.Email); err == nil {
			return nil, ErrEmailInUse
		}
		user.Email = *req.Email
	}

	if err := s.userRepo.Save(user); err != nil {
		return nil, err
	}

	return dto.FromModelToUserResponse(user), nil
}

func (s *userService) DeleteUser(userID string) error {
	err := s.userRepo.Delete(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}

// ToggleFavorite adds the movie to the user's favorites when absent and
// removes it when present, returning the new state. Toggling twice returns
// the user to the original state. Read-modify-write without conflict
// detection; concurrent toggles on the same pair can race.
func (s *userService) ToggleFavorite(userID string, movieID int64) (bool, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}
	if _, err := s.movieRepo.FindByID(movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrMovieNotFound
		}
		return false, err
	}

	exists, err := s.favoriteRepo.Exists(userID, movieID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := s.favoriteRepo.Remove(userID, movieID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.favoriteRepo.Add(userID, movieID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *userService) ListFavorites(userID string) ([]dto.MovieResponse, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	movies, err := s.favoriteRepo.ListMovies(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MovieResponse, 0, len(movies))
	for i := range movies {
		responses = append(responses, *dto.FromModelToMovieResponse(&movies[i]))
	}
	return responses, nil
}
