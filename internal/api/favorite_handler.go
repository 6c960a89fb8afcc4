package api

import (
	"errors"
	"io"
	"math"
	"net/http"

	"github.com/meepleshelf/meeple-api/internal/api/shared"
	"github.com/meepleshelf/meeple-api/internal/service"
	"github.com/meepleshelf/meeple-api/internal/validation"
)

// FavoriteHandler handles favorite-related HTTP requests.
// It also depends on the boardgame service: creating a favorite first
// confirms the referenced boardgame exists so the caller gets a 404
// instead of a constraint failure.
type FavoriteHandler struct {
	favoriteService  service.FavoriteService
	boardgameService service.BoardgameService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(
	favoriteService service.FavoriteService,
	boardgameService service.BoardgameService,
) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService:  favoriteService,
		boardgameService: boardgameService,
	}
}

// ListFavorites handles GET /favorites requests. The response rows are the
// flat favorite/boardgame join projection.
func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.favoriteService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DataResponse{Data: favorites})
}

// CreateFavorite handles POST /favorites requests.
func (h *FavoriteHandler) CreateFavorite(w http.ResponseWriter, r *http.Request) {
	var req CreateFavoriteRequest
	if err := shared.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if shared.IsMissing(req.IDBoardgame) {
		shared.RespondWithError(w, r, http.StatusBadRequest, MissingInformationMessage)
		return
	}

	// No upper bound on the referenced id, only the numeric kind check.
	if err := validation.Int(req.IDBoardgame, "IdBoardgame", math.Inf(1)); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	idBoardgame := int64(asInt(req.IDBoardgame))

	// Check that the boardgame exists before inserting the reference.
	if _, err := h.boardgameService.Get(r.Context(), idBoardgame); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	favorite, err := h.favoriteService.Create(r.Context(), idBoardgame)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreateFavoriteResponse{
		Message:  "Favorite Created",
		Favorite: favorite,
	})
}

// DeleteFavorite handles DELETE /favorites/{id} requests.
func (h *FavoriteHandler) DeleteFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.favoriteService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Favorite Deleted"})
}
