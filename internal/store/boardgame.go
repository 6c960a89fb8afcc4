package store

import (
	"context"

	"github.com/meepleshelf/meeple-api/internal/domain"
)

// BoardgameStore defines the interface for boardgame data persistence.
type BoardgameStore interface {
	// List retrieves all boardgames in insertion order, each annotated
	// with the derived IsFavorite flag.
	// Returns an empty slice if the catalog is empty.
	List(ctx context.Context) ([]*domain.Boardgame, error)

	// GetByID retrieves a boardgame by its unique ID, annotated with the
	// derived IsFavorite flag.
	// Returns ErrBoardgameNotFound if the boardgame does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Boardgame, error)

	// Create saves a new boardgame and fills in the store-assigned ID.
	Create(ctx context.Context, boardgame *domain.Boardgame) error

	// Update writes the boardgame's publisher, category, description and
	// year columns. Name is immutable after creation and is not written.
	// Returns ErrBoardgameNotFound if no row matches the ID.
	Update(ctx context.Context, boardgame *domain.Boardgame) error

	// Delete removes a boardgame by its ID.
	// Returns ErrBoardgameNotFound if no row matches the ID.
	Delete(ctx context.Context, id int64) error
}
