package create_booking

import (
	"github.com/m04kA/alejandrums/internal/service/bookings/models"
	createBooking "github.com/m04kA/alejandrums/internal/usecase/create_booking"
	"github.com/m04kA/alejandrums/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID      int64  `json:"roomId"`
	Date        string `json:"date"` // "2026-10-15"
	Hours       []int  `json:"hours"`
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты)
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RoomID:      r.RoomID,
		Date:        date,
		Hours:       r.Hours,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		ClientPhone: r.ClientPhone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}
