package store

import (
	"context"

	"github.com/meepleshelf/meeple-api/internal/domain"
)

// FavoriteStore defines the interface for favorite data persistence.
type FavoriteStore interface {
	// List retrieves all favorites with the referenced boardgame's name,
	// publisher, category and year joined in as a flat projection.
	// Returns an empty slice if there are no favorites.
	List(ctx context.Context) ([]*domain.FavoriteWithBoardgame, error)

	// Create saves a new favorite and fills in the store-assigned ID.
	// Returns ErrInvalidEntity if the referenced boardgame does not exist
	// (foreign key violation).
	Create(ctx context.Context, favorite *domain.Favorite) error

	// Delete removes a favorite by its own ID.
	// Returns ErrFavoriteNotFound if no row matches the ID.
	Delete(ctx context.Context, id int64) error

	// DeleteByBoardgame removes every favorite referencing the given
	// boardgame ID and returns the number of rows removed. Removing zero
	// rows is not an error.
	DeleteByBoardgame(ctx context.Context, idBoardgame int64) (int64, error)
}
