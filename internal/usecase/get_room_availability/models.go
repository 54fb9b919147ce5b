package get_room_availability

import (
	"github.com/m04kA/alejandrums/internal/domain"
	"github.com/m04kA/alejandrums/pkg/types"
)

// Request модель запроса доступности зала
type Request struct {
	RoomID int64
	Date   types.Date
}

// Response слоты зала на дату
type Response struct {
	Room           *domain.Room
	Date           types.Date
	Today          types.Date
	LastDate       types.Date // последняя дата окна бронирования
	Slots          []domain.Slot
	AvailableCount int
}

// HasPreviousDay можно ли перейти на предыдущий день
func (r *Response) HasPreviousDay() bool {
	return r.Date.After(r.Today)
}

// HasNextDay можно ли перейти на следующий день
func (r *Response) HasNextDay() bool {
	return r.Date.Before(r.LastDate)
}
