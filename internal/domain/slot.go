package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/alejandrums/pkg/types"
)

// SlotStatus состояние часового слота
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotReserved  SlotStatus = "reserved"
	SlotPaid      SlotStatus = "paid"
	SlotCompleted SlotStatus = "completed"
)

// Slot один часовой интервал зала на конкретную дату
type Slot struct {
	ID        string
	RoomID    int64
	Date      types.Date
	StartHour int
	EndHour   int
	Status    SlotStatus
}

// NewSlot создаёт слот на час hour
func NewSlot(roomID int64, date types.Date, hour int, status SlotStatus) Slot {
	return Slot{
		ID:        SlotID(roomID, date, hour),
		RoomID:    roomID,
		Date:      date,
		StartHour: hour,
		EndHour:   hour + 1,
		Status:    status,
	}
}

// IsAvailable returns true if the slot can be selected
func (s Slot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// Label "09:00 - 10:00"
func (s Slot) Label() string {
	return FormatHour(s.StartHour) + " - " + FormatHour(s.EndHour)
}

// SlotID ключ слота: "<roomID>-<YYYY-MM-DD>-<hour>"
func SlotID(roomID int64, date types.Date, hour int) string {
	return fmt.Sprintf("%d-%s-%d", roomID, date.String(), hour)
}

// IsWithinOpeningHours проверяет, что с часа hour начинается допустимый слот
func IsWithinOpeningHours(hour int) bool {
	return hour >= OpeningHour && hour < ClosingHour
}

// ErrInvalidSelection возвращается при некорректном выборе часов
var ErrInvalidSelection = errors.New("invalid slot selection")

// NormalizeHours проверяет выбор часов, убирает повторы и сортирует по возрастанию
func NormalizeHours(hours []int) ([]int, error) {
	if len(hours) == 0 {
		return nil, fmt.Errorf("%w: no hours selected", ErrInvalidSelection)
	}

	seen := make(map[int]struct{}, len(hours))
	normalized := make([]int, 0, len(hours))
	for _, h := range hours {
		if !IsWithinOpeningHours(h) {
			return nil, fmt.Errorf("%w: hour %d is outside opening hours", ErrInvalidSelection, h)
		}
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		normalized = append(normalized, h)
	}

	sort.Ints(normalized)
	return normalized, nil
}
