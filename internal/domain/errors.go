package domain

import "errors"

// Ошибки хранилища, общие для всех реализаций репозиториев
var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotTaken       = errors.New("slot already reserved")
)
