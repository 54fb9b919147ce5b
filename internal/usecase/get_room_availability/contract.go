package get_room_availability

import (
	"context"
	"time"

	"github.com/m04kA/alejandrums/internal/domain"
	"github.com/m04kA/alejandrums/pkg/types"
)

// RoomRepository интерфейс репозитория залов
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// ReservationRepository интерфейс получения занятых часов
type ReservationRepository interface {
	GetReservations(ctx context.Context, roomID int64, date types.Date) ([]domain.Reservation, error)
}

// AvailabilityCache кэш занятых часов зала на дату
// Set применяется, только если version совпадает с текущей версией записи
type AvailabilityCache interface {
	Get(ctx context.Context, roomID int64, date types.Date) (hours []int, version string, found bool, err error)
	Set(ctx context.Context, roomID int64, date types.Date, hours []int, version string) error
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
