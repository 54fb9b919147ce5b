package create_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда зал не найден или неактивен
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrDateInPast возвращается для дат раньше сегодняшней
	ErrDateInPast = errors.New("create_booking: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами окна бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrInvalidSelection возвращается при некорректном выборе часов
	ErrInvalidSelection = errors.New("create_booking: invalid slot selection")

	// ErrSlotNotAvailable возвращается, когда выбранный час занят или уже прошёл
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrPaymentFailed возвращается, если предоплата не прошла
	ErrPaymentFailed = errors.New("create_booking: payment failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
