package domain

import "time"

// ContactMessage сообщение с формы обратной связи
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Phone     *string
	Message   string
	CreatedAt time.Time
}
