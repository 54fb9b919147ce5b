package booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/alejandrums/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("booking.repository: %w", domain.ErrBookingNotFound)

	// ErrSlotTaken возвращается при нарушении уникальности (room_id, booking_date, hour)
	// и при конфликте сериализуемых транзакций
	ErrSlotTaken = fmt.Errorf("booking.repository: %w", domain.ErrSlotTaken)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
