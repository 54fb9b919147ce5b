package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/alejandrums/internal/api/handlers"
	createBooking "github.com/m04kA/alejandrums/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera AAAA-MM-DD"
	msgInvalidInput       = "completa nombre, email válido y teléfono"
	msgInvalidSelection   = "selecciona al menos un horario válido entre 09:00 y 22:00"
	msgRoomNotFound       = "sala no encontrada"
	msgDateInPast         = "no se puede reservar en una fecha pasada"
	msgDateTooFar         = "solo se puede reservar hasta 30 días de anticipación"
	msgSlotNotAvailable   = "uno o más horarios seleccionados ya no están disponibles"
	msgPaymentFailed      = "no se pudo procesar el pago inicial"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		status, message := ErrorStatus(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("POST /bookings - Failed to create booking: room_id=%d, date=%s, error=%v",
				req.RoomID, req.Date, err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Warn("POST /bookings - Rejected: room_id=%d, date=%s, status=%d, error=%v",
			req.RoomID, req.Date, status, err)
		handlers.RespondError(w, status, message)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, reference=%s, room_id=%d",
		result.Booking.ID, result.Booking.Reference, result.Booking.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// ErrorStatus сопоставляет ошибку use case с HTTP статусом и сообщением для клиента
// Используется и JSON API, и HTML формой бронирования
func ErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, createBooking.ErrInvalidInput):
		return http.StatusBadRequest, msgInvalidInput
	case errors.Is(err, createBooking.ErrInvalidSelection):
		return http.StatusBadRequest, msgInvalidSelection
	case errors.Is(err, createBooking.ErrDateInPast):
		return http.StatusBadRequest, msgDateInPast
	case errors.Is(err, createBooking.ErrDateTooFarInFuture):
		return http.StatusBadRequest, msgDateTooFar
	case errors.Is(err, createBooking.ErrRoomNotFound):
		return http.StatusNotFound, msgRoomNotFound
	case errors.Is(err, createBooking.ErrSlotNotAvailable):
		return http.StatusConflict, msgSlotNotAvailable
	case errors.Is(err, createBooking.ErrPaymentFailed):
		return http.StatusPaymentRequired, msgPaymentFailed
	default:
		return http.StatusInternalServerError, ""
	}
}
