package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/meepleshelf/meeple-api/internal/domain"
	"github.com/meepleshelf/meeple-api/internal/platform/logger"
	"github.com/meepleshelf/meeple-api/internal/store"
)

// isFavoriteSubquery counts the favorites referencing each boardgame row.
// A count greater than zero derives the IsFavorite flag; the flag is
// recomputed on every read and never stored.
const isFavoriteSubquery = `(
	SELECT COUNT(f.id)
	FROM favorites AS f
	WHERE f.id_boardgame = b.id
)`

// PostgresBoardgameStore implements the store.BoardgameStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBoardgameStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBoardgameStore creates a new PostgreSQL implementation of the
// BoardgameStore interface. It accepts a database connection that should be
// initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresBoardgameStore(db store.DBTX, logger *slog.Logger) *PostgresBoardgameStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBoardgameStore{
		db:     db,
		logger: logger.With(slog.String("component", "boardgame_store")),
	}
}

// Ensure PostgresBoardgameStore implements store.BoardgameStore interface
var _ store.BoardgameStore = (*PostgresBoardgameStore)(nil)

// List implements store.BoardgameStore.List
// It retrieves all boardgames in insertion order, each annotated with the
// derived IsFavorite flag.
func (s *PostgresBoardgameStore) List(ctx context.Context) ([]*domain.Boardgame, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT b.id, b.name, b.publisher, b.category, b.description, b.year,
		       ` + isFavoriteSubquery + ` AS favorite_count
		FROM boardgames AS b
		ORDER BY b.id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query boardgames",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var boardgames []*domain.Boardgame
	for rows.Next() {
		boardgame, err := scanBoardgame(rows)
		if err != nil {
			log.Error("failed to scan boardgame row",
				slog.String("error", err.Error()))
			return nil, err
		}
		boardgames = append(boardgames, boardgame)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	// Return empty slice instead of nil if the catalog is empty
	if boardgames == nil {
		boardgames = []*domain.Boardgame{}
	}

	log.Debug("listed boardgames", slog.Int("count", len(boardgames)))
	return boardgames, nil
}

// GetByID implements store.BoardgameStore.GetByID
// It retrieves a boardgame by its unique ID, annotated with the derived
// IsFavorite flag.
// Returns store.ErrBoardgameNotFound if the boardgame does not exist.
func (s *PostgresBoardgameStore) GetByID(ctx context.Context, id int64) (*domain.Boardgame, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving boardgame by ID", slog.Int64("boardgame_id", id))

	query := `
		SELECT b.id, b.name, b.publisher, b.category, b.description, b.year,
		       ` + isFavoriteSubquery + ` AS favorite_count
		FROM boardgames AS b
		WHERE b.id = $1
	`

	boardgame, err := scanBoardgame(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("boardgame not found", slog.Int64("boardgame_id", id))
			return nil, store.ErrBoardgameNotFound
		}
		log.Error("failed to get boardgame by ID",
			slog.String("error", err.Error()),
			slog.Int64("boardgame_id", id))
		return nil, MapError(err)
	}

	log.Debug("boardgame retrieved successfully",
		slog.Int64("boardgame_id", id),
		slog.Bool("is_favorite", boardgame.IsFavorite))
	return boardgame, nil
}

// Create implements store.BoardgameStore.Create
// It saves a new boardgame to the database and fills in the store-assigned ID.
func (s *PostgresBoardgameStore) Create(ctx context.Context, boardgame *domain.Boardgame) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO boardgames (name, publisher, category, description, year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		boardgame.Name,
		boardgame.Publisher,
		boardgame.Category,
		boardgame.Description,
		boardgame.Year,
	).Scan(&boardgame.ID)

	if err != nil {
		log.Error("failed to create boardgame",
			slog.String("error", err.Error()),
			slog.String("name", boardgame.Name))
		return MapError(err)
	}

	log.Info("boardgame created successfully",
		slog.Int64("boardgame_id", boardgame.ID),
		slog.String("name", boardgame.Name))
	return nil
}

// Update implements store.BoardgameStore.Update
// It writes the boardgame's publisher, category, description and year columns.
// Returns store.ErrBoardgameNotFound if no row matches the ID.
func (s *PostgresBoardgameStore) Update(ctx context.Context, boardgame *domain.Boardgame) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("updating boardgame", slog.Int64("boardgame_id", boardgame.ID))

	query := `
		UPDATE boardgames
		SET publisher = $1, category = $2, description = $3, year = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		boardgame.Publisher,
		boardgame.Category,
		boardgame.Description,
		boardgame.Year,
		boardgame.ID,
	)

	if err != nil {
		log.Error("failed to update boardgame",
			slog.String("error", err.Error()),
			slog.Int64("boardgame_id", boardgame.ID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrBoardgameNotFound); err != nil {
		if errors.Is(err, store.ErrBoardgameNotFound) {
			log.Debug("boardgame not found for update",
				slog.Int64("boardgame_id", boardgame.ID))
		}
		return err
	}

	log.Info("boardgame updated successfully",
		slog.Int64("boardgame_id", boardgame.ID))
	return nil
}

// Delete implements store.BoardgameStore.Delete
// It removes a boardgame by its ID.
// Returns store.ErrBoardgameNotFound if no row matches the ID.
func (s *PostgresBoardgameStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM boardgames
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete boardgame",
			slog.String("error", err.Error()),
			slog.Int64("boardgame_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrBoardgameNotFound); err != nil {
		if errors.Is(err, store.ErrBoardgameNotFound) {
			log.Debug("boardgame not found for delete",
				slog.Int64("boardgame_id", id))
		}
		return err
	}

	log.Info("boardgame deleted successfully", slog.Int64("boardgame_id", id))
	return nil
}

// rowScanner is satisfied by *sql.Rows and *sql.Row.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanBoardgame scans one boardgame row including the favorite count column
// and derives the IsFavorite flag.
func scanBoardgame(row rowScanner) (*domain.Boardgame, error) {
	var boardgame domain.Boardgame
	var favoriteCount int64

	err := row.Scan(
		&boardgame.ID,
		&boardgame.Name,
		&boardgame.Publisher,
		&boardgame.Category,
		&boardgame.Description,
		&boardgame.Year,
		&favoriteCount,
	)
	if err != nil {
		return nil, err
	}

	boardgame.IsFavorite = favoriteCount > 0
	return &boardgame, nil
}
