package submit_contact

import (
	"context"

	"github.com/m04kA/alejandrums/internal/service/contact/models"
)

type ContactService interface {
	Submit(ctx context.Context, req *models.SubmitContactRequest) (*models.ContactResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
