package get_room_availability

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/m04kA/alejandrums/internal/domain"
	"github.com/m04kA/alejandrums/pkg/logger"
	"github.com/m04kA/alejandrums/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeRooms struct {
	rooms map[int64]*domain.Room
	err   error
}

func (f *fakeRooms) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	room, ok := f.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return room, nil
}

type fakeReservations struct {
	reservations []domain.Reservation
	calls        int
	err          error
	// afterRead вызывается после снимка резервов, до возврата результата
	afterRead    func()
}

func (f *fakeReservations) GetReservations(_ context.Context, roomID int64, date types.Date) ([]domain.Reservation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Reservation
	for _, r := range f.reservations {
		if r.RoomID == roomID && r.Date == date {
			out = append(out, r)
		}
	}
	if f.afterRead != nil {
		hook := f.afterRead
		f.afterRead = nil
		hook()
	}
	return out, nil
}

// fakeCache повторяет версионную семантику RedisCache
type fakeCache struct {
	entries  map[string][]int
	versions map[string]int
	getErr   error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]int{}, versions: map[string]int{}}
}

func cacheKey(roomID int64, date types.Date) string {
	return domain.SlotID(roomID, date, 0)
}

func (c *fakeCache) Get(_ context.Context, roomID int64, date types.Date) ([]int, string, bool, error) {
	if c.getErr != nil {
		return nil, "", false, c.getErr
	}
	key := cacheKey(roomID, date)
	hours, ok := c.entries[key]
	return hours, strconv.Itoa(c.versions[key]), ok, nil
}

func (c *fakeCache) Set(_ context.Context, roomID int64, date types.Date, hours []int, version string) error {
	key := cacheKey(roomID, date)
	if version != strconv.Itoa(c.versions[key]) {
		return nil
	}
	c.entries[key] = hours
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, roomID int64, date types.Date) error {
	key := cacheKey(roomID, date)
	c.versions[key]++
	delete(c.entries, key)
	return nil
}

var (
	now   = time.Date(2026, 10, 15, 12, 10, 0, 0, time.UTC)
	today = types.NewDate(now)
	salaA = &domain.Room{ID: 1, Slug: "sala-a", Name: "Sala A", PricePerHour: 15000, Active: true}
)

func newTestUseCase(reservations *fakeReservations, cache *fakeCache) *UseCase {
	rooms := &fakeRooms{rooms: map[int64]*domain.Room{
		1: salaA,
		9: {ID: 9, Slug: "sala-cerrada", Active: false},
	}}
	uc := NewUseCase(rooms, reservations, cache, time.UTC, logger.NewNop())
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecute_GeneratesSlotsWithReservations(t *testing.T) {
	tomorrow := today.AddDays(1)
	reservations := &fakeReservations{reservations: []domain.Reservation{
		{RoomID: 1, Date: tomorrow, Hour: 9},
		{RoomID: 1, Date: tomorrow, Hour: 14},
		{RoomID: 2, Date: tomorrow, Hour: 10},
	}}
	uc := newTestUseCase(reservations, newFakeCache())

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: tomorrow})
	require.NoError(t, err)

	require.Len(t, resp.Slots, domain.SlotsPerDay)
	assert.Equal(t, 11, resp.AvailableCount)
	assert.Equal(t, domain.SlotReserved, resp.Slots[0].Status)
	assert.Equal(t, domain.SlotAvailable, resp.Slots[1].Status)
	assert.Equal(t, domain.SlotReserved, resp.Slots[5].Status)
	assert.True(t, resp.HasPreviousDay())
	assert.True(t, resp.HasNextDay())
}

func TestExecute_TodayMarksStartedHours(t *testing.T) {
	uc := newTestUseCase(&fakeReservations{}, newFakeCache())

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: today})
	require.NoError(t, err)

	// 9..12 уже начались
	assert.Equal(t, 9, resp.AvailableCount)
	assert.False(t, resp.HasPreviousDay())
}

func TestExecute_UsesCache(t *testing.T) {
	tomorrow := today.AddDays(1)
	reservations := &fakeReservations{}
	cache := newFakeCache()
	uc := newTestUseCase(reservations, cache)

	_, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: tomorrow})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), &Request{RoomID: 1, Date: tomorrow})
	require.NoError(t, err)

	assert.Equal(t, 1, reservations.calls)

	cache.entries[cacheKey(1, tomorrow)] = []int{20, 21}
	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: tomorrow})
	require.NoError(t, err)
	assert.Equal(t, 11, resp.AvailableCount)
}

func TestExecute_BookingDuringReadDoesNotLeaveStaleCache(t *testing.T) {
	tomorrow := today.AddDays(1)
	reservations := &fakeReservations{}
	cache := newFakeCache()
	uc := newTestUseCase(reservations, cache)

	// Бронирование фиксируется после чтения резервов, но до записи в кэш
	reservations.afterRead = func() {
		reservations.reservations = append(reservations.reservations, domain.Reservation{RoomID: 1, Date: tomorrow, Hour: 14})
		require.NoError(t, cache.Invalidate(context.Background(), 1, tomorrow))
	}

	first, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: tomorrow})
	require.NoError(t, err)
	assert.Equal(t, domain.SlotAvailable, first.Slots[5].Status)

	second, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: tomorrow})
	require.NoError(t, err)
	assert.Equal(t, domain.SlotReserved, second.Slots[5].Status)
	assert.Equal(t, 2, reservations.calls)

	// Теперь кэш заполнен свежими данными
	_, err = uc.Execute(context.Background(), &Request{RoomID: 1, Date: tomorrow})
	require.NoError(t, err)
	assert.Equal(t, 2, reservations.calls)
}

func TestExecute_CacheErrorFallsBackToRepository(t *testing.T) {
	reservations := &fakeReservations{}
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	uc := newTestUseCase(reservations, cache)

	_, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: today.AddDays(2)})
	require.NoError(t, err)
	assert.Equal(t, 1, reservations.calls)
}

func TestExecute_LastDayOfWindow(t *testing.T) {
	uc := newTestUseCase(&fakeReservations{}, newFakeCache())

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: today.AddDays(domain.BookingWindowDays)})
	require.NoError(t, err)
	assert.False(t, resp.HasNextDay())
	assert.Equal(t, domain.SlotsPerDay, resp.AvailableCount)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		repoErr error
		wantErr error
	}{
		{name: "invalid room id", req: &Request{RoomID: 0, Date: today}, wantErr: ErrInvalidInput},
		{name: "missing date", req: &Request{RoomID: 1}, wantErr: ErrInvalidInput},
		{name: "unknown room", req: &Request{RoomID: 5, Date: today}, wantErr: ErrRoomNotFound},
		{name: "inactive room", req: &Request{RoomID: 9, Date: today}, wantErr: ErrRoomNotFound},
		{name: "past date", req: &Request{RoomID: 1, Date: today.AddDays(-1)}, wantErr: ErrDateInPast},
		{name: "beyond window", req: &Request{RoomID: 1, Date: today.AddDays(31)}, wantErr: ErrDateTooFarInFuture},
		{name: "repository failure", req: &Request{RoomID: 1, Date: today}, repoErr: errors.New("db down"), wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeReservations{err: tt.repoErr}, newFakeCache())

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
