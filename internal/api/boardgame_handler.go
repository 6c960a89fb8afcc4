package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/meepleshelf/meeple-api/internal/api/shared"
	"github.com/meepleshelf/meeple-api/internal/domain"
	"github.com/meepleshelf/meeple-api/internal/platform/logger"
	"github.com/meepleshelf/meeple-api/internal/service"
	"github.com/meepleshelf/meeple-api/internal/validation"
)

// BoardgameHandler handles boardgame-related HTTP requests.
type BoardgameHandler struct {
	boardgameService service.BoardgameService
}

// NewBoardgameHandler creates a new BoardgameHandler.
func NewBoardgameHandler(boardgameService service.BoardgameService) *BoardgameHandler {
	return &BoardgameHandler{
		boardgameService: boardgameService,
	}
}

// ListBoardgames handles GET /boardgame requests.
func (h *BoardgameHandler) ListBoardgames(w http.ResponseWriter, r *http.Request) {
	boardgames, err := h.boardgameService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DataResponse{Data: boardgames})
}

// GetBoardgame handles GET /boardgame/{id} requests.
func (h *BoardgameHandler) GetBoardgame(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	boardgame, err := h.boardgameService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DataResponse{Data: boardgame})
}

// CreateBoardgame handles POST /boardgame requests.
func (h *BoardgameHandler) CreateBoardgame(w http.ResponseWriter, r *http.Request) {
	// An absent body is treated like an empty object so it fails the
	// presence check below rather than the decode.
	var req CreateBoardgameRequest
	if err := shared.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if shared.IsMissing(req.Name) || shared.IsMissing(req.Publisher) || shared.IsMissing(req.Category) {
		shared.RespondWithError(w, r, http.StatusBadRequest, MissingInformationMessage)
		return
	}

	if err := validation.String(req.Name, "Name", domain.BoardgameNameMaxLen, true); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := validation.String(req.Publisher, "Publisher", domain.BoardgamePublisherMaxLen, true); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := validation.Int(req.Category, "Category", domain.BoardgameCategoryMax); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	params := service.CreateBoardgameParams{
		Name:      req.Name.(string),
		Publisher: req.Publisher.(string),
		Category:  asInt(req.Category),
	}

	if !shared.IsMissing(req.Description) {
		if err := validation.String(req.Description, "Description", domain.BoardgameDescriptionMaxLen, false); err != nil {
			HandleAPIError(w, r, err)
			return
		}
		params.Description = asStringPtr(req.Description)
	}
	if !shared.IsMissing(req.Year) {
		if err := validation.Int(req.Year, "Year", domain.BoardgameYearMax); err != nil {
			HandleAPIError(w, r, err)
			return
		}
		params.Year = asIntPtr(req.Year)
	}

	boardgame, err := h.boardgameService.Create(r.Context(), params)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreateBoardgameResponse{
		Message:   "Boardgame Created",
		Boardgame: createdBoardgameDTO(boardgame),
	})
}

// UpdateBoardgame handles PUT /boardgame/{id} requests.
//
// The current row is fetched before the body is validated, so an unknown id
// answers 404 even when the body is invalid. Absent fields fall back to the
// row's current values; only the supplied fields are validated.
func (h *BoardgameHandler) UpdateBoardgame(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req UpdateBoardgameRequest
	if err := shared.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	current, err := h.boardgameService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if shared.IsMissing(req.Publisher) && shared.IsMissing(req.Category) &&
		shared.IsMissing(req.Description) && shared.IsMissing(req.Year) {
		shared.RespondWithError(w, r, http.StatusBadRequest, MissingInformationMessage)
		return
	}

	params := service.UpdateBoardgameParams{
		Publisher:   current.Publisher,
		Category:    current.Category,
		Description: current.Description,
		Year:        current.Year,
	}

	if !shared.IsMissing(req.Publisher) {
		if err := validation.String(req.Publisher, "Publisher", domain.BoardgamePublisherMaxLen, true); err != nil {
			HandleAPIError(w, r, err)
			return
		}
		params.Publisher = req.Publisher.(string)
	}
	if !shared.IsMissing(req.Category) {
		if err := validation.Int(req.Category, "Category", domain.BoardgameCategoryMax); err != nil {
			HandleAPIError(w, r, err)
			return
		}
		params.Category = asInt(req.Category)
	}
	if !shared.IsMissing(req.Description) {
		if err := validation.String(req.Description, "Description", domain.BoardgameDescriptionMaxLen, false); err != nil {
			HandleAPIError(w, r, err)
			return
		}
		params.Description = asStringPtr(req.Description)
	}
	if !shared.IsMissing(req.Year) {
		if err := validation.Int(req.Year, "Year", domain.BoardgameYearMax); err != nil {
			HandleAPIError(w, r, err)
			return
		}
		params.Year = asIntPtr(req.Year)
	}

	updated, err := h.boardgameService.Update(r.Context(), id, params)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateBoardgameResponse{
		Message:          "Boardgame Updated",
		BoardgameUpdated: updated,
	})
}

// DeleteBoardgame handles DELETE /boardgame/{id} requests.
func (h *BoardgameHandler) DeleteBoardgame(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.boardgameService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log := logger.FromContextOrDefault(r.Context(), slog.Default())
	log.Info("boardgame deleted via API", slog.Int64("boardgame_id", id))

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Boardgame Deleted"})
}
