package quote_booking

import (
	"github.com/m04kA/alejandrums/internal/domain"
	"github.com/m04kA/alejandrums/pkg/types"
)

// Request выбранные часы зала на дату
type Request struct {
	RoomID int64
	Date   types.Date
	Hours  []int
}

// Response расчёт стоимости
type Response struct {
	Room  *domain.Room
	Date  types.Date
	Quote domain.Quote
}
