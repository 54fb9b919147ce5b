package contact

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/alejandrums/internal/domain"
	"github.com/m04kA/alejandrums/pkg/dbmetrics"
	"github.com/m04kA/alejandrums/pkg/psqlbuilder"
)

// Repository репозиторий сообщений из формы контактов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория сообщений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет сообщение
func (r *Repository) Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("contact_messages").
		Columns("name", "email", "phone", "message").
		Values(msg.Name, msg.Email, msg.Phone, msg.Message).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&msg.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	msg.CreatedAt = createdAt.Time

	return msg, nil
}
