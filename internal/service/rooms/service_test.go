package rooms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/alejandrums/internal/domain"
	"github.com/m04kA/alejandrums/internal/infra/storage/memory"
	"github.com/m04kA/alejandrums/pkg/logger"
)

func newTestService() *Service {
	store := memory.NewStore()
	for _, room := range memory.DemoRooms() {
		store.AddRoom(room)
	}
	store.AddRoom(domain.Room{ID: 4, Slug: "sala-d", Name: "Sala D", Active: false})
	return NewService(store.Rooms(), logger.NewNop())
}

func TestList_OnlyActiveRooms(t *testing.T) {
	resp, err := newTestService().List(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Rooms, 3)
	assert.Equal(t, "Sala A", resp.Rooms[0].Name)
	assert.Equal(t, "$15.000", resp.Rooms[0].PricePerHourLabel)
	assert.NotEmpty(t, resp.Rooms[0].Equipment)
}

func TestGetBySlug(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	room, err := svc.GetBySlug(ctx, " Sala-C ")
	require.NoError(t, err)
	assert.Equal(t, int64(3), room.ID)
	assert.Equal(t, int64(20000), room.PricePerHour)

	_, err = svc.GetBySlug(ctx, "sala-d")
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = svc.GetBySlug(ctx, "sala-z")
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = svc.GetBySlug(ctx, "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID(t *testing.T) {
	svc := newTestService()

	room, err := svc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "sala-b", room.Slug)

	_, err = svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

type failingRepo struct{}

func (failingRepo) List(context.Context) ([]*domain.Room, error) { return nil, errors.New("db down") }
func (failingRepo) GetByID(context.Context, int64) (*domain.Room, error) {
	return nil, errors.New("db down")
}
func (failingRepo) GetBySlug(context.Context, string) (*domain.Room, error) {
	return nil, errors.New("db down")
}

func TestRepositoryErrorsAreInternal(t *testing.T) {
	svc := NewService(failingRepo{}, logger.NewNop())

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.GetBySlug(context.Background(), "sala-a")
	assert.ErrorIs(t, err, ErrInternal)
}
