package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/alejandrums/internal/domain"
	"github.com/m04kA/alejandrums/internal/service/bookings/models"
)

// Service сервис для чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByReference получает бронирование по публичному идентификатору
// Знание reference и есть право на просмотр
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.BookingResponse, error) {
	reference = strings.TrimSpace(reference)
	if _, err := uuid.Parse(reference); err != nil {
		s.logger.Warn("GetByReference: invalid reference %q", reference)
		return nil, fmt.Errorf("%w: invalid reference: %v", ErrInvalidInput, err)
	}

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			s.logger.Warn("GetByReference: booking %s not found", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByReference: repository error for booking %s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByReference: fetched booking id=%d", booking.ID)
	return models.FromDomainBooking(booking), nil
}
