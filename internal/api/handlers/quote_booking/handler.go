package quote_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/alejandrums/internal/api/handlers"
	quoteBooking "github.com/m04kA/alejandrums/internal/usecase/quote_booking"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidRoomID      = "ID de sala inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera AAAA-MM-DD"
	msgInvalidSelection   = "selecciona al menos un horario válido entre 09:00 y 22:00"
	msgRoomNotFound       = "sala no encontrada"
	msgInvalidRequest     = "solicitud inválida"
)

var errInvalidRoomID = errors.New("invalid room id")

type Handler struct {
	useCase QuoteBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms/{roomId}/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/{id}/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(mux.Vars(r)["roomId"])
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/quote - Failed to parse request: %v", err)
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
		case errors.Is(err, quoteBooking.ErrInvalidSelection):
			h.logger.Warn("POST /rooms/{id}/quote - Invalid selection: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSelection)

		case errors.Is(err, quoteBooking.ErrInvalidInput):
			h.logger.Warn("POST /rooms/{id}/quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, quoteBooking.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/{id}/quote - Room not found: room_id=%d", useCaseReq.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("POST /rooms/{id}/quote - Failed to quote: room_id=%d, error=%v", useCaseReq.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/{id}/quote - Quote computed: room_id=%d, total=%d",
		result.Room.ID, result.Quote.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
