package api

import (
	"github.com/meepleshelf/meeple-api/internal/domain"
)

// Common request/response structures.
//
// Request bodies keep their fields as `any` so that handlers can distinguish
// a wrong JSON kind (number where a string belongs) from an absent field and
// report a precise validation message; JSON numbers arrive as float64.

// CreateBoardgameRequest defines the payload for creating a boardgame.
type CreateBoardgameRequest struct {
	Name        any `json:"name"`
	Publisher   any `json:"publisher"`
	Category    any `json:"category"`
	Description any `json:"description"`
	Year        any `json:"year"`
}

// UpdateBoardgameRequest defines the payload for updating a boardgame.
// Every field is optional, but at least one must be present.
type UpdateBoardgameRequest struct {
	Publisher   any `json:"publisher"`
	Category    any `json:"category"`
	Description any `json:"description"`
	Year        any `json:"year"`
}

// CreateFavoriteRequest defines the payload for creating a favorite.
type CreateFavoriteRequest struct {
	IDBoardgame any `json:"idBoardgame"`
}

// DataResponse wraps read results in the `{data: ...}` envelope.
type DataResponse struct {
	Data any `json:"data"`
}

// MessageResponse carries just the fixed success message of a delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedBoardgame is the boardgame as echoed back from a create. Unlike
// reads it carries no isFavorite annotation: a row that did not exist a
// moment ago cannot be anyone's favorite.
type CreatedBoardgame struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Publisher   string  `json:"publisher"`
	Category    int     `json:"category"`
	Description *string `json:"description"`
	Year        *int    `json:"year"`
}

// CreateBoardgameResponse defines the successful response for boardgame creation.
type CreateBoardgameResponse struct {
	Message   string           `json:"message"`
	Boardgame CreatedBoardgame `json:"boardgame"`
}

// UpdateBoardgameResponse defines the successful response for a boardgame update.
type UpdateBoardgameResponse struct {
	Message          string            `json:"message"`
	BoardgameUpdated *domain.Boardgame `json:"boardgameUpdated"`
}

// CreateFavoriteResponse defines the successful response for favorite creation.
type CreateFavoriteResponse struct {
	Message  string           `json:"message"`
	Favorite *domain.Favorite `json:"favorite"`
}

// createdBoardgameDTO converts a freshly created domain.Boardgame to its
// response shape.
func createdBoardgameDTO(boardgame *domain.Boardgame) CreatedBoardgame {
	return CreatedBoardgame{
		ID:          boardgame.ID,
		Name:        boardgame.Name,
		Publisher:   boardgame.Publisher,
		Category:    boardgame.Category,
		Description: boardgame.Description,
		Year:        boardgame.Year,
	}
}
