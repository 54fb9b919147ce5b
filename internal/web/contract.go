package web

import (
	"context"

	bookingModels "github.com/m04kA/alejandrums/internal/service/bookings/models"
	contactModels "github.com/m04kA/alejandrums/internal/service/contact/models"
	roomModels "github.com/m04kA/alejandrums/internal/service/rooms/models"
	createBooking "github.com/m04kA/alejandrums/internal/usecase/create_booking"
	getRoomAvailability "github.com/m04kA/alejandrums/internal/usecase/get_room_availability"
	quoteBooking "github.com/m04kA/alejandrums/internal/usecase/quote_booking"
)

type RoomService interface {
	List(ctx context.Context) (*roomModels.RoomListResponse, error)
	GetBySlug(ctx context.Context, slug string) (*roomModels.RoomResponse, error)
	GetByID(ctx context.Context, id int64) (*roomModels.RoomResponse, error)
}

type BookingService interface {
	GetByReference(ctx context.Context, reference string) (*bookingModels.BookingResponse, error)
}

type ContactService interface {
	Submit(ctx context.Context, req *contactModels.SubmitContactRequest) (*contactModels.ContactResponse, error)
}

type AvailabilityUseCase interface {
	Execute(ctx context.Context, req *getRoomAvailability.Request) (*getRoomAvailability.Response, error)
}

type QuoteUseCase interface {
	Execute(ctx context.Context, req *quoteBooking.Request) (*quoteBooking.Response, error)
}

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
