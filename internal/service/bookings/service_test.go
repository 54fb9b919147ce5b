package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/alejandrums/internal/domain"
	"github.com/m04kA/alejandrums/internal/infra/storage/memory"
	"github.com/m04kA/alejandrums/pkg/logger"
	"github.com/m04kA/alejandrums/pkg/types"
)

func TestGetByReference(t *testing.T) {
	store := memory.NewStore()
	ref := uuid.NewString()
	_, err := store.Bookings().Create(context.Background(), &domain.Booking{
		Reference:  ref,
		RoomID:     1,
		RoomName:   "Sala A",
		ClientName: "Ana",
		Date:       types.Date{Year: 2026, Month: time.October, Day: 16},
		Hours:      []int{14, 15},
		TotalPrice: 30000,
		PaidAmount: 15000,
		Status:     domain.StatusPartial,
	})
	require.NoError(t, err)

	svc := NewService(store.Bookings(), logger.NewNop())

	got, err := svc.GetByReference(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-16", got.Date)
	assert.Equal(t, "14:00 - 16:00", got.TimeRange)
	assert.Equal(t, int64(15000), got.RemainingAmount)
	assert.Equal(t, "partial", got.Status)
	require.Len(t, got.Slots, 2)
	assert.Equal(t, "paid", got.Slots[0].Status)
	assert.Equal(t, "1-2026-10-16-14", got.Slots[0].ID)

	_, err = svc.GetByReference(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.GetByReference(context.Background(), "booking-123")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
