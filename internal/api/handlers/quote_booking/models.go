package quote_booking

import (
	"strconv"

	quoteBooking "github.com/m04kA/alejandrums/internal/usecase/quote_booking"
	"github.com/m04kA/alejandrums/pkg/types"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	Date  string `json:"date"` // "2026-10-15"
	Hours []int  `json:"hours"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	RoomID         int64  `json:"roomId"`
	RoomName       string `json:"roomName"`
	Date           string `json:"date"`
	Hours          []int  `json:"hours"`
	HoursCount     int    `json:"hoursCount"`
	TimeRange      string `json:"timeRange"`
	PricePerHour   int64  `json:"pricePerHour"`
	TotalPrice     int64  `json:"totalPrice"`
	InitialPayment int64  `json:"initialPayment"`
	Remaining      int64  `json:"remaining"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest(roomIDStr string) (*quoteBooking.Request, error) {
	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		return nil, errInvalidRoomID
	}

	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &quoteBooking.Request{RoomID: roomID, Date: date, Hours: r.Hours}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteBooking.Response) *QuoteResponse {
	return &QuoteResponse{
		RoomID:         resp.Room.ID,
		RoomName:       resp.Room.Name,
		Date:           resp.Date.String(),
		Hours:          resp.Quote.Hours,
		HoursCount:     len(resp.Quote.Hours),
		TimeRange:      resp.Quote.TimeRange,
		PricePerHour:   resp.Quote.PricePerHour,
		TotalPrice:     resp.Quote.TotalPrice,
		InitialPayment: resp.Quote.InitialPayment,
		Remaining:      resp.Quote.Remaining,
	}
}
