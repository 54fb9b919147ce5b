package get_room_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/alejandrums/internal/api/handlers"
	getRoomAvailability "github.com/m04kA/alejandrums/internal/usecase/get_room_availability"
)

const (
	msgInvalidRoomID  = "ID de sala inválido"
	msgMissingDate    = "la fecha es obligatoria"
	msgInvalidDate    = "formato de fecha inválido, se espera AAAA-MM-DD"
	msgRoomNotFound   = "sala no encontrada"
	msgDateInPast     = "no se puede reservar en una fecha pasada"
	msgDateTooFar     = "solo se puede reservar hasta 30 días de anticipación"
	msgInvalidRequest = "solicitud inválida"
)

var errInvalidRoomID = errors.New("invalid room id")

type Handler struct {
	useCase GetRoomAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomIDStr := mux.Vars(r)["roomId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /rooms/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(roomIDStr, dateStr)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid params: %v", err)
		if errors.Is(err, errInvalidRoomID) {
			handlers.RespondBadRequest(w, msgInvalidRoomID)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getRoomAvailability.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/availability - Room not found: room_id=%d", useCaseReq.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getRoomAvailability.ErrDateInPast):
			h.logger.Warn("GET /rooms/{id}/availability - Date in past: date=%s", useCaseReq.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getRoomAvailability.ErrDateTooFarInFuture):
			h.logger.Warn("GET /rooms/{id}/availability - Date too far: date=%s", useCaseReq.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getRoomAvailability.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /rooms/{id}/availability - Failed to get availability: room_id=%d, date=%s, error=%v",
				useCaseReq.RoomID, useCaseReq.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/availability - Slots retrieved: room_id=%d, date=%s, available=%d",
		useCaseReq.RoomID, useCaseReq.Date, result.AvailableCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
