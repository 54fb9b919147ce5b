package get_room_availability

import "errors"

var (
	// ErrRoomNotFound возвращается, когда зал не найден или неактивен
	ErrRoomNotFound = errors.New("get_room_availability: room not found")

	// ErrDateInPast возвращается для дат раньше сегодняшней
	ErrDateInPast = errors.New("get_room_availability: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами окна бронирования
	ErrDateTooFarInFuture = errors.New("get_room_availability: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_room_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_room_availability: internal error")
)
