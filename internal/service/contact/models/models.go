package models

import (
	"strings"
	"time"

	"github.com/m04kA/alejandrums/internal/domain"
	"github.com/m04kA/alejandrums/pkg/ptr"
)

// SubmitContactRequest сообщение с формы контактов
type SubmitContactRequest struct {
	Name    string `json:"name" schema:"name" validate:"required,max=120"`
	Email   string `json:"email" schema:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" schema:"phone" validate:"omitempty,max=32"`
	Message string `json:"message" schema:"message" validate:"required,max=2000"`
}

// Normalize убирает пробелы по краям полей
func (r *SubmitContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Message = strings.TrimSpace(r.Message)
}

// ToDomain конвертирует запрос в domain модель
func (r *SubmitContactRequest) ToDomain() *domain.ContactMessage {
	msg := &domain.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Message: r.Message,
	}
	if r.Phone != "" {
		msg.Phone = ptr.Ptr(r.Phone)
	}
	return msg
}

// ContactResponse ответ на отправку сообщения
type ContactResponse struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// FromDomainMessage конвертирует domain модель в response
func FromDomainMessage(msg *domain.ContactMessage) *ContactResponse {
	return &ContactResponse{
		ID:        msg.ID,
		CreatedAt: msg.CreatedAt.Format(time.RFC3339),
	}
}
