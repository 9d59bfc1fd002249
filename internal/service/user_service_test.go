package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cinehub/internal/dto"
	"cinehub/internal/models"

	"github.com/google/uuid"
)

// memUsers is an in-memory UserRepository
type memUsers struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[string]*models.User)}
}

func (m *memUsers) Create(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *memUsers) FindByID(id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *user
	return &found, nil
}

func (m *memUsers) FindByEmail(email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUsers) FindByResetToken(token string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.ResetToken != nil && *user.ResetToken == token {
			found := *user
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUsers) List(page, pageSize int) ([]models.User, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var users []models.User
	for _, user := range m.users {
		users = append(users, *user)
	}
	return users, int64(len(users)), nil
}

func (m *memUsers) Save(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *memUsers) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.users, id)
	return nil
}

// memFavorites is an in-memory FavoriteRepository over the movie store
type memFavorites struct {
	mu    sync.Mutex
	store *memStore
	pairs map[string][]int64 // userID -> movie ids in insertion order
}

func newMemFavorites(store *memStore) *memFavorites {
	return &memFavorites{store: store, pairs: make(map[string][]int64)}
}

func (m *memFavorites) Exists(userID string, movieID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.pairs[userID] {
		if id == movieID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memFavorites) Add(userID string, movieID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pairs[userID] = append(m.pairs[userID], movieID)
	return nil
}

func (m *memFavorites) Remove(userID string, movieID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := m.pairs[userID]
	for i, id := range ids {
		if id == movieID {
			m.pairs[userID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memFavorites) ListMovies(userID string) ([]models.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var movies []models.Movie
	for _, id := range m.pairs[userID] {
		if movie, err := m.store.FindByID(id); err == nil {
			movies = append(movies, *movie)
		}
	}
	return movies, nil
}

func newTestUserService(t *testing.T) (UserService, MovieService, *memUsers) {
	t.Helper()
	store := newMemStore()
	users := newMemUsers()
	movieSvc := NewMovieService(store, &memComments{store: store})
	userSvc := NewUserService(users, store, newMemFavorites(store))
	return userSvc, movieSvc, users
}

func seedUser(t *testing.T, users *memUsers, email string) *models.User {
	t.Helper()
	user := &models.User{FirstName: "Ada", LastName: "Lovelace", Age: 28, Email: email}
	require.NoError(t, users.Create(user))
	return user
}

func TestToggleFavoriteIsAnInvolution(t *testing.T) {
	userSvc, movieSvc, users := newTestUserService(t)

	user := seedUser(t, users, "ada@example.com")
	movie := createTestMovie(t, movieSvc, "solaris")

	favorited, err := userSvc.ToggleFavorite(user.ID, movie.ID)
	require.NoError(t, err)
	assert.True(t, favorited)

	favorites, err := userSvc.ListFavorites(user.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, movie.ID, favorites[0].ID)

	// Toggling again restores the original state
	favorited, err = userSvc.ToggleFavorite(user.ID, movie.ID)
	require.NoError(t, err)
	assert.False(t, favorited)

	favorites, err = userSvc.ListFavorites(user.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestToggleFavoriteValidatesBothSides(t *testing.T) {
	userSvc, movieSvc, users := newTestUserService(t)

	user := seedUser(t, users, "ada@example.com")
	movie := createTestMovie(t, movieSvc, "stalker")

	_, err := userSvc.ToggleFavorite("missing-user", movie.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = userSvc.ToggleFavorite(user.ID, 404)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestUpdateUserRejectsTakenEmail(t *testing.T) {
	userSvc, _, users := newTestUserService(t)

	seedUser(t, users, "taken@example.com")
	user := seedUser(t, users, "ada@example.com")

	taken := "taken@example.com"
	_, err := userSvc.UpdateUser(user.ID, dto.UpdateUserRequest{Email: &taken})
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestDeleteUserNotFound(t *testing.T) {
	userSvc, _, _ := newTestUserService(t)
	assert.ErrorIs(t, userSvc.DeleteUser("nope"), ErrUserNotFound)
}
