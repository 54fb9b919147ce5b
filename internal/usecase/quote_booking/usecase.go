package quote_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/alejandrums/internal/domain"
)

// UseCase расчёт стоимости выбранных слотов
// Доступность не проверяется: её перепроверяет создание бронирования
type UseCase struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// Execute считает итоговую сумму, предоплату и остаток
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	hours, err := domain.NormalizeHours(req.Hours)
	if err != nil {
		uc.logger.Warn("QuoteBooking: invalid selection for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("QuoteBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}
	if !room.IsBookable() {
		return nil, ErrRoomNotFound
	}

	quote := domain.NewQuote(hours, room.PricePerHour)

	uc.logger.Info("QuoteBooking: room=%d, date=%s, hours=%d, total=%d",
		room.ID, req.Date, len(hours), quote.TotalPrice)

	return &Response{
		Room:  room,
		Date:  req.Date,
		Quote: quote,
	}, nil
}
