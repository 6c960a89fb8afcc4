package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/meepleshelf/meeple-api/internal/domain"
	"github.com/meepleshelf/meeple-api/internal/platform/logger"
	"github.com/meepleshelf/meeple-api/internal/store"
)

// PostgresFavoriteStore implements the store.FavoriteStore interface
// using a PostgreSQL database as the storage backend.
type PostgresFavoriteStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFavoriteStore creates a new PostgreSQL implementation of the
// FavoriteStore interface. It accepts a database connection that should be
// initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresFavoriteStore(db store.DBTX, logger *slog.Logger) *PostgresFavoriteStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresFavoriteStore{
		db:     db,
		logger: logger.With(slog.String("component", "favorite_store")),
	}
}

// Ensure PostgresFavoriteStore implements store.FavoriteStore interface
var _ store.FavoriteStore = (*PostgresFavoriteStore)(nil)

// List implements store.FavoriteStore.List
// It retrieves all favorites joined with the referenced boardgame's name,
// publisher, category and year.
func (s *PostgresFavoriteStore) List(ctx context.Context) ([]*domain.FavoriteWithBoardgame, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT f.id, f.id_boardgame, b.name, b.publisher, b.category, b.year
		FROM favorites AS f
		JOIN boardgames AS b ON b.id = f.id_boardgame
		ORDER BY f.id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query favorites",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var favorites []*domain.FavoriteWithBoardgame
	for rows.Next() {
		var favorite domain.FavoriteWithBoardgame

		err := rows.Scan(
			&favorite.ID,
			&favorite.IDBoardgame,
			&favorite.Name,
			&favorite.Publisher,
			&favorite.Category,
			&favorite.Year,
		)
		if err != nil {
			log.Error("failed to scan favorite row",
				slog.String("error", err.Error()))
			return nil, err
		}

		favorites = append(favorites, &favorite)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	// Return empty slice instead of nil if there are no favorites
	if favorites == nil {
		favorites = []*domain.FavoriteWithBoardgame{}
	}

	log.Debug("listed favorites", slog.Int("count", len(favorites)))
	return favorites, nil
}

// Create implements store.FavoriteStore.Create
// It saves a new favorite to the database and fills in the store-assigned ID.
// Returns store.ErrInvalidEntity if the referenced boardgame does not exist
// (foreign key violation).
func (s *PostgresFavoriteStore) Create(ctx context.Context, favorite *domain.Favorite) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO favorites (id_boardgame)
		VALUES ($1)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, favorite.IDBoardgame).Scan(&favorite.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during favorite creation",
				slog.String("error", err.Error()),
				slog.Int64("id_boardgame", favorite.IDBoardgame))
			return fmt.Errorf("%w: boardgame with ID %d not found",
				store.ErrInvalidEntity, favorite.IDBoardgame)
		}

		log.Error("failed to create favorite",
			slog.String("error", err.Error()),
			slog.Int64("id_boardgame", favorite.IDBoardgame))
		return MapError(err)
	}

	log.Info("favorite created successfully",
		slog.Int64("favorite_id", favorite.ID),
		slog.Int64("id_boardgame", favorite.IDBoardgame))
	return nil
}

// Delete implements store.FavoriteStore.Delete
// It removes a favorite by its own ID.
// Returns store.ErrFavoriteNotFound if no row matches the ID.
func (s *PostgresFavoriteStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM favorites
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete favorite",
			slog.String("error", err.Error()),
			slog.Int64("favorite_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrFavoriteNotFound); err != nil {
		if errors.Is(err, store.ErrFavoriteNotFound) {
			log.Debug("favorite not found for delete",
				slog.Int64("favorite_id", id))
		}
		return err
	}

	log.Info("favorite deleted successfully", slog.Int64("favorite_id", id))
	return nil
}

// DeleteByBoardgame implements store.FavoriteStore.DeleteByBoardgame
// It removes every favorite referencing the given boardgame ID and returns
// the number of rows removed. Removing zero rows is not an error.
func (s *PostgresFavoriteStore) DeleteByBoardgame(ctx context.Context, idBoardgame int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM favorites
		WHERE id_boardgame = $1
	`

	result, err := s.db.ExecContext(ctx, query, idBoardgame)
	if err != nil {
		log.Error("failed to delete favorites by boardgame",
			slog.String("error", err.Error()),
			slog.Int64("id_boardgame", idBoardgame))
		return 0, MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("id_boardgame", idBoardgame))
		return 0, err
	}

	log.Debug("deleted favorites by boardgame",
		slog.Int64("id_boardgame", idBoardgame),
		slog.Int64("count", rowsAffected))
	return rowsAffected, nil
}
