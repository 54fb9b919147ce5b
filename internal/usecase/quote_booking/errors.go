package quote_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда зал не найден или неактивен
	ErrRoomNotFound = errors.New("quote_booking: room not found")

	// ErrInvalidSelection возвращается при некорректном выборе часов
	ErrInvalidSelection = errors.New("quote_booking: invalid slot selection")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_booking: internal error")
)
