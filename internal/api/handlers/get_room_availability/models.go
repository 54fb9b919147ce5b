package get_room_availability

import (
	"strconv"

	"github.com/m04kA/alejandrums/internal/service/bookings/models"
	getRoomAvailability "github.com/m04kA/alejandrums/internal/usecase/get_room_availability"
	"github.com/m04kA/alejandrums/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID         int64                  `json:"roomId"`
	Date           string                 `json:"date"`
	PricePerHour   int64                  `json:"pricePerHour"`
	Today          string                 `json:"today"`
	LastDate       string                 `json:"lastDate"`
	HasPreviousDay bool                   `json:"hasPreviousDay"`
	HasNextDay     bool                   `json:"hasNextDay"`
	AvailableCount int                    `json:"availableCount"`
	Slots          []*models.SlotResponse `json:"slots"`
}

// ToUseCaseRequest создает запрос use case из параметров URL
func ToUseCaseRequest(roomIDStr, dateStr string) (*getRoomAvailability.Request, error) {
	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		return nil, errInvalidRoomID
	}

	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getRoomAvailability.Request{RoomID: roomID, Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRoomAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		RoomID:         resp.Room.ID,
		Date:           resp.Date.String(),
		PricePerHour:   resp.Room.PricePerHour,
		Today:          resp.Today.String(),
		LastDate:       resp.LastDate.String(),
		HasPreviousDay: resp.HasPreviousDay(),
		HasNextDay:     resp.HasNextDay(),
		AvailableCount: resp.AvailableCount,
		Slots:          models.FromDomainSlots(resp.Slots),
	}
}
