package domain

// Field limits for Boardgame, enforced by the API layer validators.
const (
	BoardgameNameMaxLen        = 80
	BoardgamePublisherMaxLen   = 60
	BoardgameCategoryMax       = 99
	BoardgameDescriptionMaxLen = 200
	BoardgameYearMax           = 9999
)

// Boardgame is the primary catalog entity. The ID is assigned by the store
// on creation. Description and Year are optional and stored as NULL when
// absent. IsFavorite is never stored: it is derived on every read from the
// existence of at least one referencing Favorite.
type Boardgame struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Publisher   string  `json:"publisher"`
	Category    int     `json:"category"`
	Description *string `json:"description"`
	Year        *int    `json:"year"`
	IsFavorite  bool    `json:"isFavorite"`
}
