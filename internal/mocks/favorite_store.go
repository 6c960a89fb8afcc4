package mocks

import (
	"context"
	"sync"

	"github.com/meepleshelf/meeple-api/internal/domain"
)

// MockFavoriteStore implements store.FavoriteStore for testing
type MockFavoriteStore struct {
	// Custom behavior functions
	ListFn              func(ctx context.Context) ([]*domain.FavoriteWithBoardgame, error)
	CreateFn            func(ctx context.Context, favorite *domain.Favorite) error
	DeleteFn            func(ctx context.Context, id int64) error
	DeleteByBoardgameFn func(ctx context.Context, idBoardgame int64) (int64, error)

	// Default response values
	Favorites    []*domain.FavoriteWithBoardgame
	DeletedCount int64
	Err          error

	// Call tracking for verification
	mu                   sync.Mutex
	ListCount            int
	CreateCount          int
	DeleteIDs            []int64
	DeleteByBoardgameIDs []int64
}

// List implements the store.FavoriteStore interface
func (m *MockFavoriteStore) List(ctx context.Context) ([]*domain.FavoriteWithBoardgame, error) {
	m.mu.Lock()
	m.ListCount++
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Favorites, m.Err
}

// Create implements the store.FavoriteStore interface
func (m *MockFavoriteStore) Create(ctx context.Context, favorite *domain.Favorite) error {
	m.mu.Lock()
	m.CreateCount++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, favorite)
	}
	return m.Err
}

// Delete implements the store.FavoriteStore interface
func (m *MockFavoriteStore) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	m.DeleteIDs = append(m.DeleteIDs, id)
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

// DeleteByBoardgame implements the store.FavoriteStore interface
func (m *MockFavoriteStore) DeleteByBoardgame(ctx context.Context, idBoardgame int64) (int64, error) {
	m.mu.Lock()
	m.DeleteByBoardgameIDs = append(m.DeleteByBoardgameIDs, idBoardgame)
	m.mu.Unlock()

	if m.DeleteByBoardgameFn != nil {
		return m.DeleteByBoardgameFn(ctx, idBoardgame)
	}
	return m.DeletedCount, m.Err
}
