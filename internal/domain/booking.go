package domain

import (
	"time"

	"github.com/m04kA/alejandrums/pkg/types"
)

// BookingStatus represents the payment status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusPartial   BookingStatus = "partial"   // внесена предоплата
	StatusConfirmed BookingStatus = "confirmed" // оплачено полностью
)

// Booking заявка клиента на один или несколько часов зала
type Booking struct {
	ID          int64
	Reference   string // публичный идентификатор (UUID)
	RoomID      int64
	RoomName    string
	ClientName  string
	ClientEmail string
	ClientPhone string
	Date        types.Date
	Hours       []int // по возрастанию
	TotalPrice  int64
	PaidAmount  int64
	Status      BookingStatus
	CreatedAt   time.Time
}

// RemainingAmount сумма, которую нужно доплатить до использования зала
func (b *Booking) RemainingAmount() int64 {
	return b.TotalPrice - b.PaidAmount
}

// TimeRange "14:00 - 16:00"
func (b *Booking) TimeRange() string {
	return TimeRange(b.Hours)
}

// Slots возвращает забронированные часы как оплаченные слоты
func (b *Booking) Slots() []Slot {
	slots := make([]Slot, len(b.Hours))
	for i, h := range b.Hours {
		slots[i] = NewSlot(b.RoomID, b.Date, h, SlotPaid)
	}
	return slots
}

// Reservations резервы, которые создаёт бронирование
func (b *Booking) Reservations() []Reservation {
	reservations := make([]Reservation, len(b.Hours))
	for i, h := range b.Hours {
		reservations[i] = Reservation{RoomID: b.RoomID, Date: b.Date, Hour: h}
		if b.ID != 0 {
			id := b.ID
			reservations[i].BookingID = &id
		}
	}
	return reservations
}

// IsValidBookingStatus проверяет строковый статус
func IsValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case StatusPending, StatusPartial, StatusConfirmed:
		return true
	default:
		return false
	}
}
