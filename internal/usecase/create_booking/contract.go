package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/alejandrums/internal/domain"
	"github.com/m04kA/alejandrums/internal/integrations/payment"
	"github.com/m04kA/alejandrums/pkg/types"
)

// RoomRepository интерфейс репозитория залов
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// Create сохраняет бронирование и резервы его часов
	// Возвращает domain.ErrSlotTaken, если какой-то час уже занят
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetReservations внутри транзакции блокирует строки резервов (FOR UPDATE)
	GetReservations(ctx context.Context, roomID int64, date types.Date) ([]domain.Reservation, error)
}

// PaymentGateway шлюз предоплаты
type PaymentGateway interface {
	Charge(ctx context.Context, req payment.ChargeRequest) (*payment.Charge, error)
	Refund(ctx context.Context, chargeID string) error
}

// AvailabilityCache кэш занятых часов
type AvailabilityCache interface {
	Invalidate(ctx context.Context, roomID int64, date types.Date) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics бизнес-метрики бронирований
type Metrics interface {
	ObserveBooking(hours int)
	ObserveConflict()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider текущее время в часовом поясе бизнеса
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
