package domain

import "time"

// Room зал для репетиций
type Room struct {
	ID           int64
	Slug         string
	Name         string
	Description  string
	Capacity     int
	Equipment    []string
	ImageURL     string
	PricePerHour int64 // CLP, целые песо
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsBookable returns true if the room can be shown and booked
func (r *Room) IsBookable() bool {
	return r != nil && r.Active
}
