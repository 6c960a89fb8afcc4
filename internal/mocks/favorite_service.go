package mocks

import (
	"context"
	"sync"

	"github.com/meepleshelf/meeple-api/internal/domain"
)

// MockFavoriteService implements service.FavoriteService for testing
type MockFavoriteService struct {
	// Custom behavior functions
	ListFn   func(ctx context.Context) ([]*domain.FavoriteWithBoardgame, error)
	CreateFn func(ctx context.Context, idBoardgame int64) (*domain.Favorite, error)
	DeleteFn func(ctx context.Context, id int64) error

	// Default response values
	Favorites []*domain.FavoriteWithBoardgame
	Favorite  *domain.Favorite
	Err       error

	// Call tracking for verification
	mu        sync.Mutex
	ListCount int
	CreateIDs []int64
	DeleteIDs []int64
}

// List implements the service.FavoriteService interface
func (m *MockFavoriteService) List(ctx context.Context) ([]*domain.FavoriteWithBoardgame, error) {
	m.mu.Lock()
	m.ListCount++
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Favorites, m.Err
}

// Create implements the service.FavoriteService interface
func (m *MockFavoriteService) Create(ctx context.Context, idBoardgame int64) (*domain.Favorite, error) {
	m.mu.Lock()
	m.CreateIDs = append(m.CreateIDs, idBoardgame)
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, idBoardgame)
	}
	return m.Favorite, m.Err
}

// CreateCallCount returns how many times Create was invoked.
func (m *MockFavoriteService) CreateCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.CreateIDs)
}

// Delete implements the service.FavoriteService interface
func (m *MockFavoriteService) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	m.DeleteIDs = append(m.DeleteIDs, id)
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}
