package models

import (
	"time"

	"github.com/m04kA/alejandrums/internal/domain"
)

// SlotResponse часовой слот
type SlotResponse struct {
	ID        string `json:"id"`
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
	Label     string `json:"label"` // "14:00 - 15:00"
	Status    string `json:"status"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64           `json:"id"`
	Reference       string          `json:"reference"`
	RoomID          int64           `json:"roomId"`
	RoomName        string          `json:"roomName"`
	ClientName      string          `json:"clientName"`
	ClientEmail     string          `json:"clientEmail"`
	ClientPhone     string          `json:"clientPhone"`
	Date            string          `json:"date"` // "2026-10-15"
	Hours           []int           `json:"hours"`
	TimeRange       string          `json:"timeRange"`
	TotalPrice      int64           `json:"totalPrice"`
	PaidAmount      int64           `json:"paidAmount"`
	RemainingAmount int64           `json:"remainingAmount"`
	Status          string          `json:"status"`
	Slots           []*SlotResponse `json:"slots"`
	CreatedAt       string          `json:"createdAt"`
}

// FromDomainSlot конвертирует слот в response
func FromDomainSlot(slot domain.Slot) *SlotResponse {
	return &SlotResponse{
		ID:        slot.ID,
		StartHour: slot.StartHour,
		EndHour:   slot.EndHour,
		Label:     slot.Label(),
		Status:    string(slot.Status),
	}
}

// FromDomainSlots конвертирует список слотов
func FromDomainSlots(slots []domain.Slot) []*SlotResponse {
	out := make([]*SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, FromDomainSlot(s))
	}
	return out
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		Reference:       b.Reference,
		RoomID:          b.RoomID,
		RoomName:        b.RoomName,
		ClientName:      b.ClientName,
		ClientEmail:     b.ClientEmail,
		ClientPhone:     b.ClientPhone,
		Date:            b.Date.String(),
		Hours:           b.Hours,
		TimeRange:       b.TimeRange(),
		TotalPrice:      b.TotalPrice,
		PaidAmount:      b.PaidAmount,
		RemainingAmount: b.RemainingAmount(),
		Status:          string(b.Status),
		Slots:           FromDomainSlots(b.Slots()),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}
