package domain

// Favorite marks a boardgame as favorite. It is a plain many-to-one
// reference by id; there is no per-user ownership in this application.
type Favorite struct {
	ID          int64 `json:"id"`
	IDBoardgame int64 `json:"idBoardgame"`
}

// FavoriteWithBoardgame is the flat projection returned by the favorites
// listing: the favorite row joined with a subset of the referenced
// boardgame's columns. The dotted JSON keys match the shape the consuming
// client expects.
type FavoriteWithBoardgame struct {
	ID          int64  `json:"id"`
	IDBoardgame int64  `json:"idBoardgame"`
	Name        string `json:"boardgame.name"`
	Publisher   string `json:"boardgame.publisher"`
	Category    int    `json:"boardgame.category"`
	Year        *int   `json:"boardgame.year"`
}
