package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/alejandrums/pkg/types"
)

// ErrInvalidReservationKey возвращается при разборе некорректного ключа резерва
var ErrInvalidReservationKey = errors.New("invalid reservation key")

// Reservation отметка о том, что час зала на дату занят
type Reservation struct {
	RoomID    int64
	Date      types.Date
	Hour      int
	BookingID *int64 // nil для демонстрационных резервов
}

// Key совпадает с ID слота
func (r Reservation) Key() string {
	return SlotID(r.RoomID, r.Date, r.Hour)
}

// ParseReservationKey разбирает ключ вида "1-2026-10-15-14"
func ParseReservationKey(key string) (Reservation, error) {
	parts := strings.Split(key, "-")
	if len(parts) != 5 {
		return Reservation{}, fmt.Errorf("%w: %q", ErrInvalidReservationKey, key)
	}

	roomID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || roomID <= 0 {
		return Reservation{}, fmt.Errorf("%w: bad room id in %q", ErrInvalidReservationKey, key)
	}

	date, err := types.ParseDate(strings.Join(parts[1:4], "-"))
	if err != nil {
		return Reservation{}, fmt.Errorf("%w: bad date in %q", ErrInvalidReservationKey, key)
	}

	hour, err := strconv.Atoi(parts[4])
	if err != nil || !IsWithinOpeningHours(hour) {
		return Reservation{}, fmt.Errorf("%w: bad hour in %q", ErrInvalidReservationKey, key)
	}

	return Reservation{RoomID: roomID, Date: date, Hour: hour}, nil
}

// ReservedHours множество занятых часов
type ReservedHours map[int]struct{}

// NewReservedHours собирает множество занятых часов из списка резервов
func NewReservedHours(reservations []Reservation) ReservedHours {
	set := make(ReservedHours, len(reservations))
	for _, r := range reservations {
		set[r.Hour] = struct{}{}
	}
	return set
}

func (s ReservedHours) Has(hour int) bool {
	_, ok := s[hour]
	return ok
}

// Hours возвращает занятые часы по возрастанию
func (s ReservedHours) Hours() []int {
	hours := make([]int, 0, len(s))
	for h := OpeningHour; h < ClosingHour; h++ {
		if s.Has(h) {
			hours = append(hours, h)
		}
	}
	return hours
}
