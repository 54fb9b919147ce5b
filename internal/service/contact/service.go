package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/alejandrums/internal/service/contact/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Service сервис формы контактов
type Service struct {
	contactRepo ContactRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса контактов
func NewService(contactRepo ContactRepository, logger Logger) *Service {
	return &Service{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// Submit валидирует и сохраняет сообщение
func (s *Service) Submit(ctx context.Context, req *models.SubmitContactRequest) (*models.ContactResponse, error) {
	req.Normalize()

	if err := validate.Struct(req); err != nil {
		s.logger.Warn("Submit: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, InvalidFields(err))
	}

	msg, err := s.contactRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Submit: repository error: %v", err)
		return nil, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Submit: stored contact message id=%d", msg.ID)
	return models.FromDomainMessage(msg), nil
}

// InvalidFields перечисляет поля с ошибками валидации через запятую
func InvalidFields(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return strings.Join(fields, ", ")
}
