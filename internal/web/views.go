package web

import (
	"github.com/m04kA/alejandrums/internal/domain"
	bookingModels "github.com/m04kA/alejandrums/internal/service/bookings/models"
	roomModels "github.com/m04kA/alejandrums/internal/service/rooms/models"
)

// siteInfo контакты и часы работы, общие для всех страниц
type siteInfo struct {
	Address      string
	Phone        string
	Email        string
	WeekdayHours string
	WeekendHours string
}

var site = siteInfo{
	Address:      "Av. Principal 1234, Santiago, Chile",
	Phone:        "+56 9 1234 5678",
	Email:        "contacto@alejandrums.cl",
	WeekdayHours: "Lun - Vie: 10:00 - 22:00",
	WeekendHours: "Sáb - Dom: 11:00 - 20:00",
}

// page общие поля всех страниц
type page struct {
	Title          string
	Active         string // пункт меню: inicio, salas, contacto
	Site           siteInfo
	Year           int
	InitialPercent int
}

func (p *Pages) newPage(title, active string) page {
	return page{
		Title:          title,
		Active:         active,
		Site:           site,
		Year:           p.now().In(p.loc).Year(),
		InitialPercent: domain.InitialPaymentPercent,
	}
}

type homePage struct {
	page
	Rooms []*roomModels.RoomResponse
}

type roomsPage struct {
	page
	Rooms []*roomModels.RoomResponse
}

type slotView struct {
	Hour      int
	Label     string
	Available bool
	Selected  bool
}

type quoteView struct {
	Hours          []int
	HoursCount     int
	TimeRange      string
	TotalPrice     int64
	InitialPayment int64
	Remaining      int64
}

type roomPage struct {
	page
	Room           *roomModels.RoomResponse
	Date           string
	DateLabel      string
	PrevDate       string
	NextDate       string
	HasPrev        bool
	HasNext        bool
	Slots          []slotView
	AvailableCount int
	OpeningHour    int
	ClosingHour    int
	Quote          *quoteView
	Form           bookingForm
	Error          string
}

type bookingPage struct {
	page
	Booking *bookingModels.BookingResponse
	Slug    string
}

type contactPage struct {
	page
	Form    contactFormView
	Flashes []string
	Error   string
}

type contactFormView struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type errorPage struct {
	page
	Status  int
	Message string
}

func newQuoteView(q domain.Quote) *quoteView {
	return &quoteView{
		Hours:          q.Hours,
		HoursCount:     len(q.Hours),
		TimeRange:      q.TimeRange,
		TotalPrice:     q.TotalPrice,
		InitialPayment: q.InitialPayment,
		Remaining:      q.Remaining,
	}
}
