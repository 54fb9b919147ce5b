package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/alejandrums/internal/domain"
	"github.com/m04kA/alejandrums/pkg/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest валидирует входные данные запроса и нормализует выбор часов
func validateRequest(req *Request) ([]int, error) {
	req.ClientName = strings.TrimSpace(req.ClientName)
	req.ClientEmail = strings.TrimSpace(req.ClientEmail)
	req.ClientPhone = strings.TrimSpace(req.ClientPhone)

	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	hours, err := domain.NormalizeHours(req.Hours)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	return hours, nil
}

// validateDate проверяет, что дата попадает в окно бронирования
func validateDate(date, today types.Date) error {
	if date.Before(today) {
		return ErrDateInPast
	}

	if date.After(domain.LastBookableDate(today)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, domain.BookingWindowDays)
	}

	return nil
}

// unavailableHours возвращает выбранные часы, которые заняты или уже начались
func unavailableHours(date types.Date, hours []int, reservations []domain.Reservation, now time.Time) []int {
	reserved := domain.NewReservedHours(reservations)

	var taken []int
	for _, h := range hours {
		if reserved.Has(h) || domain.IsPastSlot(date, h, now) {
			taken = append(taken, h)
		}
	}
	return taken
}
