package models

import (
	"github.com/m04kA/alejandrums/internal/domain"
)

// RoomResponse ответ с данными зала
type RoomResponse struct {
	ID                int64    `json:"id"`
	Slug              string   `json:"slug"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Capacity          int      `json:"capacity"`
	Equipment         []string `json:"equipment"`
	ImageURL          string   `json:"imageUrl"`
	PricePerHour      int64    `json:"pricePerHour"`
	PricePerHourLabel string   `json:"pricePerHourLabel"` // "$15.000"
}

// RoomListResponse список залов
type RoomListResponse struct {
	Rooms []*RoomResponse `json:"rooms"`
}

// FromDomainRoom конвертирует domain модель в response
func FromDomainRoom(room *domain.Room) *RoomResponse {
	equipment := room.Equipment
	if equipment == nil {
		equipment = []string{}
	}
	return &RoomResponse{
		ID:                room.ID,
		Slug:              room.Slug,
		Name:              room.Name,
		Description:       room.Description,
		Capacity:          room.Capacity,
		Equipment:         equipment,
		ImageURL:          room.ImageURL,
		PricePerHour:      room.PricePerHour,
		PricePerHourLabel: domain.FormatPrice(room.PricePerHour),
	}
}

// FromDomainRooms конвертирует список залов
func FromDomainRooms(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{Rooms: make([]*RoomResponse, 0, len(rooms))}
	for _, room := range rooms {
		resp.Rooms = append(resp.Rooms, FromDomainRoom(room))
	}
	return resp
}
