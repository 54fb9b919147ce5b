package create_booking

import (
	"github.com/m04kA/alejandrums/internal/domain"
	"github.com/m04kA/alejandrums/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	RoomID      int64      `validate:"gt=0"`
	Date        types.Date // Дата бронирования
	Hours       []int      // Выбранные часы начала слотов
	ClientName  string     `validate:"required,max=120"`
	ClientEmail string     `validate:"required,email"`
	ClientPhone string     `validate:"required,max=32"`
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking   *domain.Booking
	Room      *domain.Room
	PaymentID string // ID предоплаты в платёжном шлюзе
}
