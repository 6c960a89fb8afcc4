package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/meepleshelf/meeple-api/internal/apperr"
	"github.com/meepleshelf/meeple-api/internal/domain"
	"github.com/meepleshelf/meeple-api/internal/store"
)

// FavoriteService provides favorite-related operations.
type FavoriteService interface {
	// List retrieves all favorites with the referenced boardgame's fields
	// joined in as a flat projection.
	List(ctx context.Context) ([]*domain.FavoriteWithBoardgame, error)

	// Create inserts a new favorite referencing the given boardgame ID.
	// The caller is responsible for confirming the boardgame exists first;
	// this service performs no existence check itself.
	Create(ctx context.Context, idBoardgame int64) (*domain.Favorite, error)

	// Delete removes a favorite by its own ID.
	// Returns a typed 404 error if the favorite does not exist.
	Delete(ctx context.Context, id int64) error
}

// ErrFavoriteNotFound is the typed application error raised when a
// requested favorite has no corresponding row.
var ErrFavoriteNotFound = apperr.NotFound("Favorite not found")

// favoriteServiceImpl implements the FavoriteService interface.
type favoriteServiceImpl struct {
	favoriteStore store.FavoriteStore
	logger        *slog.Logger
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(
	favoriteStore store.FavoriteStore,
	logger *slog.Logger,
) (FavoriteService, error) {
	if favoriteStore == nil {
		return nil, errors.New("favoriteStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &favoriteServiceImpl{
		favoriteStore: favoriteStore,
		logger:        logger.With("component", "favorite_service"),
	}, nil
}

// List retrieves all favorites with their joined boardgame fields.
func (s *favoriteServiceImpl) List(ctx context.Context) ([]*domain.FavoriteWithBoardgame, error) {
	return s.favoriteStore.List(ctx)
}

// Create inserts a new favorite row referencing idBoardgame.
func (s *favoriteServiceImpl) Create(ctx context.Context, idBoardgame int64) (*domain.Favorite, error) {
	favorite := &domain.Favorite{
		IDBoardgame: idBoardgame,
	}

	if err := s.favoriteStore.Create(ctx, favorite); err != nil {
		return nil, err
	}

	s.logger.Info("favorite created",
		"favorite_id", favorite.ID,
		"id_boardgame", idBoardgame)
	return favorite, nil
}

// Delete removes a favorite by its own ID.
func (s *favoriteServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.favoriteStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrFavoriteNotFound) {
			return ErrFavoriteNotFound
		}
		return err
	}

	s.logger.Info("favorite deleted", "favorite_id", id)
	return nil
}
