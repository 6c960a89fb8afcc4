package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrBoardgameNotFound, ErrFavoriteNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when an entity cannot be stored because it
	// violates a store-level constraint, such as a favorite referencing a
	// boardgame that does not exist.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrBoardgameNotFound indicates that the requested boardgame does not exist in the store.
	ErrBoardgameNotFound = fmt.Errorf("%w: boardgame", ErrNotFound)

	// ErrFavoriteNotFound indicates that the requested favorite does not exist in the store.
	ErrFavoriteNotFound = fmt.Errorf("%w: favorite", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
