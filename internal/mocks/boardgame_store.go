package mocks

import (
	"context"
	"sync"

	"github.com/meepleshelf/meeple-api/internal/domain"
)

// MockBoardgameStore implements store.BoardgameStore for testing
type MockBoardgameStore struct {
	// Custom behavior functions
	ListFn    func(ctx context.Context) ([]*domain.Boardgame, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Boardgame, error)
	CreateFn  func(ctx context.Context, boardgame *domain.Boardgame) error
	UpdateFn  func(ctx context.Context, boardgame *domain.Boardgame) error
	DeleteFn  func(ctx context.Context, id int64) error

	// Default response values
	Boardgames []*domain.Boardgame
	Boardgame  *domain.Boardgame
	Err        error

	// Call tracking for verification
	mu          sync.Mutex
	ListCount   int
	GetByIDIDs  []int64
	CreateCount int
	UpdateRows  []*domain.Boardgame
	DeleteIDs   []int64
}

// List implements the store.BoardgameStore interface
func (m *MockBoardgameStore) List(ctx context.Context) ([]*domain.Boardgame, error) {
	m.mu.Lock()
	m.ListCount++
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Boardgames, m.Err
}

// GetByID implements the store.BoardgameStore interface
func (m *MockBoardgameStore) GetByID(ctx context.Context, id int64) (*domain.Boardgame, error) {
	m.mu.Lock()
	m.GetByIDIDs = append(m.GetByIDIDs, id)
	m.mu.Unlock()

	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Boardgame, m.Err
}

// Create implements the store.BoardgameStore interface
func (m *MockBoardgameStore) Create(ctx context.Context, boardgame *domain.Boardgame) error {
	m.mu.Lock()
	m.CreateCount++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, boardgame)
	}
	return m.Err
}

// Update implements the store.BoardgameStore interface
func (m *MockBoardgameStore) Update(ctx context.Context, boardgame *domain.Boardgame) error {
	m.mu.Lock()
	m.UpdateRows = append(m.UpdateRows, boardgame)
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, boardgame)
	}
	return m.Err
}

// Delete implements the store.BoardgameStore interface
func (m *MockBoardgameStore) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	m.DeleteIDs = append(m.DeleteIDs, id)
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}
