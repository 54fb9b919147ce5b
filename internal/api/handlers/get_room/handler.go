package get_room

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/alejandrums/internal/api/handlers"
	"github.com/m04kA/alejandrums/internal/service/rooms"
)

const (
	msgInvalidSlug  = "identificador de sala inválido"
	msgRoomNotFound = "sala no encontrada"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	room, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{slug} - Invalid slug: %q", slug)
			handlers.RespondBadRequest(w, msgInvalidSlug)

		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{slug} - Room not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/{slug} - Failed to get room: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{slug} - Room retrieved: room_id=%d", room.ID)
	handlers.RespondJSON(w, http.StatusOK, room)
}
