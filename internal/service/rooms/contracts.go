package rooms

import (
	"context"

	"github.com/m04kA/alejandrums/internal/domain"
)

// RoomRepository интерфейс репозитория залов
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
