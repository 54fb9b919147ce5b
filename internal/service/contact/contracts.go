package contact

import (
	"context"

	"github.com/m04kA/alejandrums/internal/domain"
)

// ContactRepository интерфейс репозитория сообщений
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
