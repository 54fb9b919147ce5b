package domain

import (
	"time"

	"github.com/m04kA/alejandrums/pkg/types"
)

// GenerateDaySlots строит все слоты зала на дату
// now должен быть в часовом поясе бизнеса. Слот считается занятым, если:
// - час есть в reserved
// - дата уже прошла
// - дата сегодня и час уже начался (hour <= текущего часа)
func GenerateDaySlots(roomID int64, date types.Date, reserved ReservedHours, now time.Time) []Slot {
	slots := make([]Slot, 0, SlotsPerDay)
	for hour := OpeningHour; hour < ClosingHour; hour++ {
		status := SlotAvailable
		if reserved.Has(hour) || IsPastSlot(date, hour, now) {
			status = SlotReserved
		}
		slots = append(slots, NewSlot(roomID, date, hour, status))
	}
	return slots
}

// IsPastSlot проверяет, что слот уже нельзя забронировать по времени
func IsPastSlot(date types.Date, hour int, now time.Time) bool {
	today := types.NewDate(now)
	if date.Before(today) {
		return true
	}
	return date == today && hour <= now.Hour()
}

// LastBookableDate последняя дата, доступная для бронирования
func LastBookableDate(today types.Date) types.Date {
	return today.AddDays(BookingWindowDays)
}
