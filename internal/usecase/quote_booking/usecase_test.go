package quote_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/alejandrums/internal/domain"
	"github.com/m04kA/alejandrums/pkg/logger"
	"github.com/m04kA/alejandrums/pkg/types"
)

type fakeRooms struct {
	err error
}

func (f fakeRooms) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	switch id {
	case 2:
		return &domain.Room{ID: 2, Name: "Sala B", PricePerHour: 12000, Active: true}, nil
	case 4:
		return &domain.Room{ID: 4, Name: "Bodega", PricePerHour: 5000, Active: false}, nil
	default:
		return nil, domain.ErrRoomNotFound
	}
}

var date = types.Date{Year: 2026, Month: time.October, Day: 20}

func TestExecute_ComputesQuote(t *testing.T) {
	uc := NewUseCase(fakeRooms{}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 2, Date: date, Hours: []int{18, 16, 17, 16}})
	require.NoError(t, err)

	assert.Equal(t, []int{16, 17, 18}, resp.Quote.Hours)
	assert.Equal(t, int64(36000), resp.Quote.TotalPrice)
	assert.Equal(t, int64(18000), resp.Quote.InitialPayment)
	assert.Equal(t, int64(18000), resp.Quote.Remaining)
	assert.Equal(t, "16:00 - 19:00", resp.Quote.TimeRange)
	assert.Equal(t, "Sala B", resp.Room.Name)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		rooms   fakeRooms
		req     *Request
		wantErr error
	}{
		{name: "no room", req: &Request{Date: date, Hours: []int{10}}, wantErr: ErrInvalidInput},
		{name: "no date", req: &Request{RoomID: 2, Hours: []int{10}}, wantErr: ErrInvalidInput},
		{name: "empty selection", req: &Request{RoomID: 2, Date: date}, wantErr: ErrInvalidSelection},
		{name: "hour after closing", req: &Request{RoomID: 2, Date: date, Hours: []int{22}}, wantErr: ErrInvalidSelection},
		{name: "unknown room", req: &Request{RoomID: 3, Date: date, Hours: []int{10}}, wantErr: ErrRoomNotFound},
		{name: "inactive room", req: &Request{RoomID: 4, Date: date, Hours: []int{10}}, wantErr: ErrRoomNotFound},
		{name: "storage error", rooms: fakeRooms{err: errors.New("timeout")}, req: &Request{RoomID: 2, Date: date, Hours: []int{10}}, wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.rooms, logger.NewNop())
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
