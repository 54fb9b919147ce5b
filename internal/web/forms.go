package web

import (
	"net/url"
	"strings"

	"github.com/gorilla/schema"

	contactModels "github.com/m04kA/alejandrums/internal/service/contact/models"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// roomQuery параметры страницы зала: выбранная дата и отмеченные часы
type roomQuery struct {
	Fecha string `schema:"fecha"`
	Horas []int  `schema:"horas"`
}

// bookingForm форма подтверждения бронирования
type bookingForm struct {
	Fecha    string `schema:"fecha"`
	Horas    []int  `schema:"horas"`
	Nombre   string `schema:"nombre"`
	Email    string `schema:"email"`
	Telefono string `schema:"telefono"`
}

func (f *bookingForm) normalize() {
	f.Nombre = strings.TrimSpace(f.Nombre)
	f.Email = strings.TrimSpace(f.Email)
	f.Telefono = strings.TrimSpace(f.Telefono)
}

func decodeRoomQuery(values url.Values) (roomQuery, error) {
	var q roomQuery
	err := decoder.Decode(&q, values)
	return q, err
}

func decodeBookingForm(values url.Values) (bookingForm, error) {
	var f bookingForm
	if err := decoder.Decode(&f, values); err != nil {
		return f, err
	}
	f.normalize()
	return f, nil
}

func decodeContactForm(values url.Values) (contactModels.SubmitContactRequest, error) {
	var req contactModels.SubmitContactRequest
	err := decoder.Decode(&req, values)
	return req, err
}
