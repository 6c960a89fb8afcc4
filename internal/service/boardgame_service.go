package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/meepleshelf/meeple-api/internal/apperr"
	"github.com/meepleshelf/meeple-api/internal/domain"
	"github.com/meepleshelf/meeple-api/internal/store"
)

// CreateBoardgameParams holds the validated fields for creating a boardgame.
// Description and Year are optional and stored as NULL when nil.
type CreateBoardgameParams struct {
	Name        string
	Publisher   string
	Category    int
	Description *string
	Year        *int
}

// UpdateBoardgameParams holds the full set of mutable fields for an update.
// The caller resolves omitted fields to the row's current values before
// invoking the service, so every field here is written as-is.
type UpdateBoardgameParams struct {
	Publisher   string
	Category    int
	Description *string
	Year        *int
}

// BoardgameService provides boardgame-related operations.
type BoardgameService interface {
	// List retrieves all boardgames, each annotated with IsFavorite.
	List(ctx context.Context) ([]*domain.Boardgame, error)

	// Get retrieves a boardgame by ID, annotated with IsFavorite.
	// Returns a typed 404 error if the boardgame does not exist.
	Get(ctx context.Context, id int64) (*domain.Boardgame, error)

	// Create inserts a new boardgame and returns it as created.
	Create(ctx context.Context, params CreateBoardgameParams) (*domain.Boardgame, error)

	// Update writes the given fields and returns the freshly re-read row.
	// Returns a typed 404 error if the boardgame does not exist.
	Update(ctx context.Context, id int64, params UpdateBoardgameParams) (*domain.Boardgame, error)

	// Delete removes all favorites referencing the boardgame, then the
	// boardgame itself. Returns a typed 404 error if the boardgame delete
	// affects zero rows; the favorite cleanup is unconditional.
	Delete(ctx context.Context, id int64) error
}

// ErrBoardgameNotFound is the typed application error raised when a
// requested boardgame has no corresponding row. Its message and status
// surface verbatim in the API error envelope.
var ErrBoardgameNotFound = apperr.NotFound("Boardgame not found")

// boardgameServiceImpl implements the BoardgameService interface.
type boardgameServiceImpl struct {
	boardgameStore store.BoardgameStore
	favoriteStore  store.FavoriteStore
	logger         *slog.Logger
}

// NewBoardgameService creates a new BoardgameService.
// The favorite store is needed for the cascade on delete.
func NewBoardgameService(
	boardgameStore store.BoardgameStore,
	favoriteStore store.FavoriteStore,
	logger *slog.Logger,
) (BoardgameService, error) {
	if boardgameStore == nil {
		return nil, errors.New("boardgameStore cannot be nil")
	}
	if favoriteStore == nil {
		return nil, errors.New("favoriteStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &boardgameServiceImpl{
		boardgameStore: boardgameStore,
		favoriteStore:  favoriteStore,
		logger:         logger.With("component", "boardgame_service"),
	}, nil
}

// List retrieves all boardgames with their IsFavorite annotation.
func (s *boardgameServiceImpl) List(ctx context.Context) ([]*domain.Boardgame, error) {
	return s.boardgameStore.List(ctx)
}

// Get retrieves a single boardgame with its IsFavorite annotation.
func (s *boardgameServiceImpl) Get(ctx context.Context, id int64) (*domain.Boardgame, error) {
	boardgame, err := s.boardgameStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrBoardgameNotFound) {
			return nil, ErrBoardgameNotFound
		}
		return nil, err
	}
	return boardgame, nil
}

// Create inserts a new boardgame row and returns it as created.
// The result carries no meaningful IsFavorite annotation: a freshly created
// boardgame cannot be referenced by any favorite yet.
func (s *boardgameServiceImpl) Create(
	ctx context.Context,
	params CreateBoardgameParams,
) (*domain.Boardgame, error) {
	boardgame := &domain.Boardgame{
		Name:        params.Name,
		Publisher:   params.Publisher,
		Category:    params.Category,
		Description: params.Description,
		Year:        params.Year,
	}

	if err := s.boardgameStore.Create(ctx, boardgame); err != nil {
		return nil, err
	}

	s.logger.Info("boardgame created",
		"boardgame_id", boardgame.ID,
		"name", boardgame.Name)
	return boardgame, nil
}

// Update writes the supplied fields and re-reads the row so the response
// carries the current IsFavorite annotation.
func (s *boardgameServiceImpl) Update(
	ctx context.Context,
	id int64,
	params UpdateBoardgameParams,
) (*domain.Boardgame, error) {
	boardgame := &domain.Boardgame{
		ID:          id,
		Publisher:   params.Publisher,
		Category:    params.Category,
		Description: params.Description,
		Year:        params.Year,
	}

	if err := s.boardgameStore.Update(ctx, boardgame); err != nil {
		if errors.Is(err, store.ErrBoardgameNotFound) {
			return nil, ErrBoardgameNotFound
		}
		return nil, err
	}

	s.logger.Info("boardgame updated", "boardgame_id", id)

	return s.Get(ctx, id)
}

// Delete removes the favorites referencing the boardgame and then the
// boardgame row itself. The two statements are independent: the favorite
// cleanup does not fail on zero matches, and only the boardgame delete
// reports not-found.
func (s *boardgameServiceImpl) Delete(ctx context.Context, id int64) error {
	removed, err := s.favoriteStore.DeleteByBoardgame(ctx, id)
	if err != nil {
		return err
	}

	if err := s.boardgameStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrBoardgameNotFound) {
			return ErrBoardgameNotFound
		}
		return err
	}

	s.logger.Info("boardgame deleted",
		"boardgame_id", id,
		"favorites_removed", removed)
	return nil
}
