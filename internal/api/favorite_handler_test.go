package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meepleshelf/meeple-api/internal/api"
	"github.com/meepleshelf/meeple-api/internal/domain"
	"github.com/meepleshelf/meeple-api/internal/mocks"
	"github.com/meepleshelf/meeple-api/internal/service"
)

func newFavoriteRouter(handler *api.FavoriteHandler) http.Handler {
	r := chi.NewRouter()
	r.Route("/favorites", func(r chi.Router) {
		r.Get("/", handler.ListFavorites)
		r.Post("/", handler.CreateFavorite)
		r.Delete("/{id}", handler.DeleteFavorite)
	})
	return r
}

func TestFavoriteHandler_ListFavorites(t *testing.T) {
	year := 1995
	favoriteSvc := &mocks.MockFavoriteService{
		Favorites: []*domain.FavoriteWithBoardgame{
			{ID: 1, IDBoardgame: 7, Name: "Catan", Publisher: "Kosmos", Category: 1, Year: &year},
		},
	}
	router := newFavoriteRouter(api.NewFavoriteHandler(favoriteSvc, &mocks.MockBoardgameService{}))

	w := doRequest(t, router, http.MethodGet, "/favorites/", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// The join projection is flat, with dotted keys for the boardgame fields.
	var body struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)

	row := body.Data[0]
	assert.Equal(t, float64(1), row["id"])
	assert.Equal(t, float64(7), row["idBoardgame"])
	assert.Equal(t, "Catan", row["boardgame.name"])
	assert.Equal(t, "Kosmos", row["boardgame.publisher"])
	assert.Equal(t, float64(1), row["boardgame.category"])
	assert.Equal(t, float64(1995), row["boardgame.year"])
}

func TestFavoriteHandler_CreateFavorite(t *testing.T) {
	t.Run("creates when the boardgame exists", func(t *testing.T) {
		boardgameSvc := &mocks.MockBoardgameService{
			Boardgame: &domain.Boardgame{ID: 7, Name: "Catan", Publisher: "Kosmos", Category: 1},
		}
		favoriteSvc := &mocks.MockFavoriteService{
			Favorite: &domain.Favorite{ID: 3, IDBoardgame: 7},
		}
		router := newFavoriteRouter(api.NewFavoriteHandler(favoriteSvc, boardgameSvc))

		w := doRequest(t, router, http.MethodPost, "/favorites/", map[string]any{
			"idBoardgame": 7,
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "Favorite Created", body["message"])
		favorite := body["favorite"].(map[string]any)
		assert.Equal(t, float64(3), favorite["id"])
		assert.Equal(t, float64(7), favorite["idBoardgame"])

		// The existence check ran against the boardgame service.
		assert.Equal(t, []int64{7}, boardgameSvc.GetIDs)
	})

	t.Run("missing boardgame answers 404 before any insert", func(t *testing.T) {
		boardgameSvc := &mocks.MockBoardgameService{Err: service.ErrBoardgameNotFound}
		favoriteSvc := &mocks.MockFavoriteService{}
		router := newFavoriteRouter(api.NewFavoriteHandler(favoriteSvc, boardgameSvc))

		w := doRequest(t, router, http.MethodPost, "/favorites/", map[string]any{
			"idBoardgame": 999999,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "Boardgame not found", body["error"])
		assert.Zero(t, favoriteSvc.CreateCallCount(), "favorite service must not be reached")
	})

	t.Run("missing idBoardgame answers 400", func(t *testing.T) {
		favoriteSvc := &mocks.MockFavoriteService{}
		router := newFavoriteRouter(api.NewFavoriteHandler(favoriteSvc, &mocks.MockBoardgameService{}))

		w := doRequest(t, router, http.MethodPost, "/favorites/", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "Missing required information", body["error"])
	})

	t.Run("empty body fails the presence check, not the decode", func(t *testing.T) {
		favoriteSvc := &mocks.MockFavoriteService{}
		router := newFavoriteRouter(api.NewFavoriteHandler(favoriteSvc, &mocks.MockBoardgameService{}))

		w := doRequest(t, router, http.MethodPost, "/favorites/", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "Missing required information", body["error"])
	})

	t.Run("fractional idBoardgame resolves against the truncated id", func(t *testing.T) {
		boardgameSvc := &mocks.MockBoardgameService{
			Boardgame: &domain.Boardgame{ID: 1, Name: "Catan", Publisher: "Kosmos", Category: 1},
		}
		favoriteSvc := &mocks.MockFavoriteService{
			Favorite: &domain.Favorite{ID: 9, IDBoardgame: 1},
		}
		router := newFavoriteRouter(api.NewFavoriteHandler(favoriteSvc, boardgameSvc))

		w := doRequest(t, router, http.MethodPost, "/favorites/", map[string]any{
			"idBoardgame": 1.5,
		})
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, []int64{1}, boardgameSvc.GetIDs)
		assert.Equal(t, []int64{1}, favoriteSvc.CreateIDs)
	})

	t.Run("non-numeric idBoardgame answers the field-specific 400", func(t *testing.T) {
		favoriteSvc := &mocks.MockFavoriteService{}
		router := newFavoriteRouter(api.NewFavoriteHandler(favoriteSvc, &mocks.MockBoardgameService{}))

		w := doRequest(t, router, http.MethodPost, "/favorites/", map[string]any{
			"idBoardgame": "seven",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "Invalid data type for field: IdBoardgame. Expected a Number", body["error"])
	})
}

func TestFavoriteHandler_DeleteFavorite(t *testing.T) {
	t.Run("deletes and answers the fixed message", func(t *testing.T) {
		favoriteSvc := &mocks.MockFavoriteService{}
		router := newFavoriteRouter(api.NewFavoriteHandler(favoriteSvc, &mocks.MockBoardgameService{}))

		w := doRequest(t, router, http.MethodDelete, "/favorites/3", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "Favorite Deleted", body["message"])
		assert.Equal(t, []int64{3}, favoriteSvc.DeleteIDs)
	})

	t.Run("unknown id answers 404", func(t *testing.T) {
		favoriteSvc := &mocks.MockFavoriteService{Err: service.ErrFavoriteNotFound}
		router := newFavoriteRouter(api.NewFavoriteHandler(favoriteSvc, &mocks.MockBoardgameService{}))

		w := doRequest(t, router, http.MethodDelete, "/favorites/999999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "Favorite not found", body["error"])
	})
}
