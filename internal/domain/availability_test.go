package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statuses(slots []Slot) map[int]SlotStatus {
	m := make(map[int]SlotStatus, len(slots))
	for _, s := range slots {
		m[s.StartHour] = s.Status
	}
	return m
}

func TestGenerateDaySlots_FutureDate(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 30, 0, 0, time.UTC)
	date := testDate.AddDays(1)
	reserved := NewReservedHours([]Reservation{{RoomID: 1, Date: date, Hour: 9}, {RoomID: 1, Date: date, Hour: 14}})

	slots := GenerateDaySlots(1, date, reserved, now)

	require.Len(t, slots, 13)
	assert.Equal(t, 9, slots[0].StartHour)
	assert.Equal(t, 22, slots[12].EndHour)
	assert.Equal(t, "1-2026-10-16-9", slots[0].ID)

	st := statuses(slots)
	assert.Equal(t, SlotReserved, st[9])
	assert.Equal(t, SlotReserved, st[14])
	assert.Equal(t, SlotAvailable, st[10])
	assert.Equal(t, SlotAvailable, st[21])
}

func TestGenerateDaySlots_TodayBlocksStartedHours(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 30, 0, 0, time.UTC)

	st := statuses(GenerateDaySlots(1, testDate, ReservedHours{}, now))

	for h := 9; h <= 12; h++ {
		assert.Equal(t, SlotReserved, st[h], "hour %d already started", h)
	}
	for h := 13; h < 22; h++ {
		assert.Equal(t, SlotAvailable, st[h], "hour %d", h)
	}
}

func TestGenerateDaySlots_PastDateAllReserved(t *testing.T) {
	now := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)

	for _, s := range GenerateDaySlots(1, testDate.AddDays(-1), ReservedHours{}, now) {
		assert.Equal(t, SlotReserved, s.Status)
	}
}

func TestGenerateDaySlots_EarlyMorningTodayAllOpen(t *testing.T) {
	now := time.Date(2026, 10, 15, 8, 59, 0, 0, time.UTC)

	for _, s := range GenerateDaySlots(3, testDate, ReservedHours{}, now) {
		assert.True(t, s.IsAvailable())
	}
}

func TestLastBookableDate(t *testing.T) {
	assert.Equal(t, "2026-11-14", LastBookableDate(testDate).String())
}
