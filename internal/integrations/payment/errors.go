package payment

import "errors"

var (
	// ErrInvalidAmount возвращается для неположительной суммы
	ErrInvalidAmount = errors.New("payment: invalid amount")

	// ErrCancelled возвращается, если запрос отменён до завершения платежа
	ErrCancelled = errors.New("payment: cancelled")

	// ErrChargeNotFound возвращается при возврате неизвестного платежа
	ErrChargeNotFound = errors.New("payment: charge not found")
)
