package mocks

import (
	"context"
	"sync"

	"github.com/meepleshelf/meeple-api/internal/domain"
	"github.com/meepleshelf/meeple-api/internal/service"
)

// MockBoardgameService implements service.BoardgameService for testing
type MockBoardgameService struct {
	// Custom behavior functions
	ListFn   func(ctx context.Context) ([]*domain.Boardgame, error)
	GetFn    func(ctx context.Context, id int64) (*domain.Boardgame, error)
	CreateFn func(ctx context.Context, params service.CreateBoardgameParams) (*domain.Boardgame, error)
	UpdateFn func(ctx context.Context, id int64, params service.UpdateBoardgameParams) (*domain.Boardgame, error)
	DeleteFn func(ctx context.Context, id int64) error

	// Default response values
	Boardgames []*domain.Boardgame
	Boardgame  *domain.Boardgame
	Err        error

	// Call tracking for verification
	mu           sync.Mutex
	ListCount    int
	GetIDs       []int64
	CreateParams []service.CreateBoardgameParams
	UpdateParams []service.UpdateBoardgameParams
	DeleteIDs    []int64
}

// List implements the service.BoardgameService interface
func (m *MockBoardgameService) List(ctx context.Context) ([]*domain.Boardgame, error) {
	m.mu.Lock()
	m.ListCount++
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Boardgames, m.Err
}

// Get implements the service.BoardgameService interface
func (m *MockBoardgameService) Get(ctx context.Context, id int64) (*domain.Boardgame, error) {
	m.mu.Lock()
	m.GetIDs = append(m.GetIDs, id)
	m.mu.Unlock()

	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return m.Boardgame, m.Err
}

// Create implements the service.BoardgameService interface
func (m *MockBoardgameService) Create(
	ctx context.Context,
	params service.CreateBoardgameParams,
) (*domain.Boardgame, error) {
	m.mu.Lock()
	m.CreateParams = append(m.CreateParams, params)
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, params)
	}
	return m.Boardgame, m.Err
}

// Update implements the service.BoardgameService interface
func (m *MockBoardgameService) Update(
	ctx context.Context,
	id int64,
	params service.UpdateBoardgameParams,
) (*domain.Boardgame, error) {
	m.mu.Lock()
	m.UpdateParams = append(m.UpdateParams, params)
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, params)
	}
	return m.Boardgame, m.Err
}

// Delete implements the service.BoardgameService interface
func (m *MockBoardgameService) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	m.DeleteIDs = append(m.DeleteIDs, id)
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}
