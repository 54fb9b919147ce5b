package web

import (
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"

	createBookingHandler "github.com/m04kA/alejandrums/internal/api/handlers/create_booking"
	"github.com/m04kA/alejandrums/internal/domain"
	"github.com/m04kA/alejandrums/internal/service/bookings"
	"github.com/m04kA/alejandrums/internal/service/contact"
	"github.com/m04kA/alejandrums/internal/service/rooms"
	createBooking "github.com/m04kA/alejandrums/internal/usecase/create_booking"
	getRoomAvailability "github.com/m04kA/alejandrums/internal/usecase/get_room_availability"
	quoteBooking "github.com/m04kA/alejandrums/internal/usecase/quote_booking"
	"github.com/m04kA/alejandrums/pkg/types"
)

const (
	flashKey = "flash"

	msgRoomNotFound     = "La sala que buscas no existe."
	msgBookingNotFound  = "No encontramos esa reserva."
	msgInternal         = "Ocurrió un error inesperado. Intenta nuevamente."
	msgInvalidForm      = "No pudimos leer el formulario."
	msgSlotsUnavailable = "Uno o más horarios seleccionados ya no están disponibles."
	msgSelectionInvalid = "Selecciona al menos un horario válido."
	msgContactInvalid   = "Completa nombre, email válido y mensaje."
	msgContactSent      = "¡Mensaje enviado! Te responderemos a la brevedad."
)

// Deps зависимости страниц сайта
type Deps struct {
	Rooms        RoomService
	Bookings     BookingService
	Contact      ContactService
	Availability AvailabilityUseCase
	Quote        QuoteUseCase
	CreateBook   CreateBookingUseCase
	Sessions     sessions.Store
	SessionName  string
	Location     *time.Location
	Logger       Logger
}

// Pages HTML страницы сайта
type Pages struct {
	rooms        RoomService
	bookings     BookingService
	contact      ContactService
	availability AvailabilityUseCase
	quote        QuoteUseCase
	createBook   CreateBookingUseCase
	sessions     sessions.Store
	sessionName  string
	loc          *time.Location
	now          func() time.Time
	templates    map[string]*template.Template
	logger       Logger
}

// New парсит встроенные шаблоны и создаёт обработчики страниц
func New(deps Deps) (*Pages, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	loc := deps.Location
	if loc == nil {
		loc = time.Local
	}

	return &Pages{
		rooms:        deps.Rooms,
		bookings:     deps.Bookings,
		contact:      deps.Contact,
		availability: deps.Availability,
		quote:        deps.Quote,
		createBook:   deps.CreateBook,
		sessions:     deps.Sessions,
		sessionName:  deps.SessionName,
		loc:          loc,
		now:          time.Now,
		templates:    templates,
		logger:       deps.Logger,
	}, nil
}

// Register регистрирует страницы в роутере
// limit оборачивает обработчики POST форм (ограничение частоты), может быть nil
func (p *Pages) Register(r *mux.Router, limit func(http.Handler) http.Handler) {
	if limit == nil {
		limit = func(h http.Handler) http.Handler { return h }
	}

	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(staticFS()))).Methods(http.MethodGet)

	r.HandleFunc("/", p.Home).Methods(http.MethodGet)
	r.HandleFunc("/salas", p.Rooms).Methods(http.MethodGet)
	r.HandleFunc("/salas/{slug}", p.Room).Methods(http.MethodGet)
	r.Handle("/salas/{slug}/reservar", limit(http.HandlerFunc(p.Book))).Methods(http.MethodPost)
	r.HandleFunc("/reservas/{reference}", p.Booking).Methods(http.MethodGet)
	r.HandleFunc("/contacto", p.ContactForm).Methods(http.MethodGet)
	r.Handle("/contacto", limit(http.HandlerFunc(p.SubmitContact))).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(p.NotFound)
}

// Home GET /
func (p *Pages) Home(w http.ResponseWriter, r *http.Request) {
	list, err := p.rooms.List(r.Context())
	if err != nil {
		p.logger.Error("GET / - Failed to list rooms: %v", err)
		p.renderError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	p.render(w, http.StatusOK, "home", homePage{
		page:  p.newPage("Alejandrums | Salas de ensayo", "inicio"),
		Rooms: list.Rooms,
	})
}

// Rooms GET /salas
func (p *Pages) Rooms(w http.ResponseWriter, r *http.Request) {
	list, err := p.rooms.List(r.Context())
	if err != nil {
		p.logger.Error("GET /salas - Failed to list rooms: %v", err)
		p.renderError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	p.render(w, http.StatusOK, "rooms", roomsPage{
		page:  p.newPage("Salas | Alejandrums", "salas"),
		Rooms: list.Rooms,
	})
}

// Room GET /salas/{slug}?fecha=YYYY-MM-DD&horas=14&horas=15
func (p *Pages) Room(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	q, err := decodeRoomQuery(r.URL.Query())
	if err != nil {
		p.logger.Warn("GET /salas/{slug} - Invalid query: %v", err)
		http.Redirect(w, r, "/salas/"+url.PathEscape(slug), http.StatusSeeOther)
		return
	}

	form := bookingForm{Fecha: q.Fecha, Horas: q.Horas}
	p.renderRoom(w, r, slug, form, "", http.StatusOK)
}

// Book POST /salas/{slug}/reservar
func (p *Pages) Book(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	if err := r.ParseForm(); err != nil {
		p.renderError(w, http.StatusBadRequest, msgInvalidForm)
		return
	}
	form, err := decodeBookingForm(r.PostForm)
	if err != nil {
		p.logger.Warn("POST /salas/{slug}/reservar - Invalid form: %v", err)
		p.renderError(w, http.StatusBadRequest, msgInvalidForm)
		return
	}

	room, err := p.rooms.GetBySlug(r.Context(), slug)
	if err != nil {
		p.roomError(w, slug, err)
		return
	}

	date, err := types.ParseDate(form.Fecha)
	if err != nil {
		p.renderRoom(w, r, slug, form, msgInvalidForm, http.StatusBadRequest)
		return
	}

	result, err := p.createBook.Execute(r.Context(), &createBooking.Request{
		RoomID:      room.ID,
		Date:        date,
		Hours:       form.Horas,
		ClientName:  form.Nombre,
		ClientEmail: form.Email,
		ClientPhone: form.Telefono,
	})
	if err != nil {
		status, message := createBookingHandler.ErrorStatus(err)
		if status == http.StatusInternalServerError {
			p.logger.Error("POST /salas/{slug}/reservar - Failed to create booking: slug=%s, error=%v", slug, err)
			p.renderError(w, status, msgInternal)
			return
		}
		p.logger.Warn("POST /salas/{slug}/reservar - Rejected: slug=%s, status=%d, error=%v", slug, status, err)
		p.renderRoom(w, r, slug, form, message, status)
		return
	}

	p.logger.Info("POST /salas/{slug}/reservar - Booking created: reference=%s", result.Booking.Reference)
	http.Redirect(w, r, "/reservas/"+result.Booking.Reference, http.StatusSeeOther)
}

// Booking GET /reservas/{reference}
func (p *Pages) Booking(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	booking, err := p.bookings.GetByReference(r.Context(), reference)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) || errors.Is(err, bookings.ErrInvalidInput) {
			p.renderError(w, http.StatusNotFound, msgBookingNotFound)
			return
		}
		p.logger.Error("GET /reservas/{reference} - Failed to get booking: %v", err)
		p.renderError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	slug := ""
	if room, err := p.rooms.GetByID(r.Context(), booking.RoomID); err == nil {
		slug = room.Slug
	}

	p.render(w, http.StatusOK, "booking", bookingPage{
		page:    p.newPage("¡Reserva Confirmada! | Alejandrums", "salas"),
		Booking: booking,
		Slug:    slug,
	})
}

// ContactForm GET /contacto
func (p *Pages) ContactForm(w http.ResponseWriter, r *http.Request) {
	data := contactPage{page: p.newPage("Contacto | Alejandrums", "contacto")}

	if session, err := p.sessions.Get(r, p.sessionName); err == nil {
		for _, f := range session.Flashes(flashKey) {
			if msg, ok := f.(string); ok {
				data.Flashes = append(data.Flashes, msg)
			}
		}
		if len(data.Flashes) > 0 {
			if err := session.Save(r, w); err != nil {
				p.logger.Warn("GET /contacto - Failed to save session: %v", err)
			}
		}
	}

	p.render(w, http.StatusOK, "contact", data)
}

// SubmitContact POST /contacto
func (p *Pages) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		p.renderError(w, http.StatusBadRequest, msgInvalidForm)
		return
	}
	req, err := decodeContactForm(r.PostForm)
	if err != nil {
		p.renderError(w, http.StatusBadRequest, msgInvalidForm)
		return
	}

	if _, err := p.contact.Submit(r.Context(), &req); err != nil {
		status, message := http.StatusInternalServerError, msgInternal
		if errors.Is(err, contact.ErrInvalidInput) {
			status, message = http.StatusBadRequest, msgContactInvalid
		} else {
			p.logger.Error("POST /contacto - Failed to submit: %v", err)
		}

		p.render(w, status, "contact", contactPage{
			page: p.newPage("Contacto | Alejandrums", "contacto"),
			Form: contactFormView{
				Name:    req.Name,
				Email:   req.Email,
				Phone:   req.Phone,
				Message: req.Message,
			},
			Error: message,
		})
		return
	}

	session, err := p.sessions.Get(r, p.sessionName)
	if err == nil {
		session.AddFlash(msgContactSent, flashKey)
		err = session.Save(r, w)
	}
	if err != nil {
		p.logger.Warn("POST /contacto - Failed to save flash: %v", err)
	}

	http.Redirect(w, r, "/contacto", http.StatusSeeOther)
}

// NotFound страница 404
func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	p.renderError(w, http.StatusNotFound, "La página que buscas no existe.")
}

func (p *Pages) renderRoom(w http.ResponseWriter, r *http.Request, slug string, form bookingForm, errMsg string, status int) {
	ctx := r.Context()

	room, err := p.rooms.GetBySlug(ctx, slug)
	if err != nil {
		p.roomError(w, slug, err)
		return
	}

	today := types.NewDate(p.now().In(p.loc))
	date := today
	if form.Fecha != "" {
		parsed, err := types.ParseDate(form.Fecha)
		if err != nil {
			http.Redirect(w, r, "/salas/"+url.PathEscape(room.Slug), http.StatusSeeOther)
			return
		}
		date = parsed
	}

	avail, err := p.availability.Execute(ctx, &getRoomAvailability.Request{RoomID: room.ID, Date: date})
	if err != nil {
		if errors.Is(err, getRoomAvailability.ErrDateInPast) || errors.Is(err, getRoomAvailability.ErrDateTooFarInFuture) {
			http.Redirect(w, r, "/salas/"+url.PathEscape(room.Slug), http.StatusSeeOther)
			return
		}
		p.logger.Error("GET /salas/{slug} - Failed to get availability: room_id=%d, error=%v", room.ID, err)
		p.renderError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	selected := make(map[int]bool, len(form.Horas))
	for _, h := range form.Horas {
		selected[h] = true
	}

	data := roomPage{
		page:           p.newPage(room.Name+" | Alejandrums", "salas"),
		Room:           room,
		Date:           avail.Date.String(),
		DateLabel:      longDate(avail.Date),
		PrevDate:       avail.Date.AddDays(-1).String(),
		NextDate:       avail.Date.AddDays(1).String(),
		HasPrev:        avail.HasPreviousDay(),
		HasNext:        avail.HasNextDay(),
		AvailableCount: avail.AvailableCount,
		OpeningHour:    domain.OpeningHour,
		ClosingHour:    domain.ClosingHour,
		Form:           form,
		Error:          errMsg,
	}

	unavailable := false
	for _, s := range avail.Slots {
		data.Slots = append(data.Slots, slotView{
			Hour:      s.StartHour,
			Label:     s.Label(),
			Available: s.IsAvailable(),
			Selected:  selected[s.StartHour],
		})
		if selected[s.StartHour] && !s.IsAvailable() {
			unavailable = true
		}
	}

	if len(form.Horas) > 0 && data.Error == "" {
		if unavailable {
			data.Error = msgSlotsUnavailable
		} else {
			quote, err := p.quote.Execute(ctx, &quoteBooking.Request{RoomID: room.ID, Date: avail.Date, Hours: form.Horas})
			switch {
			case err == nil:
				data.Quote = newQuoteView(quote.Quote)
			case errors.Is(err, quoteBooking.ErrInvalidSelection):
				data.Error = msgSelectionInvalid
			default:
				p.logger.Error("GET /salas/{slug} - Failed to quote: room_id=%d, error=%v", room.ID, err)
				data.Error = msgInternal
			}
		}
	}

	p.render(w, status, "room", data)
}

func (p *Pages) roomError(w http.ResponseWriter, slug string, err error) {
	if errors.Is(err, rooms.ErrRoomNotFound) || errors.Is(err, rooms.ErrInvalidInput) {
		p.logger.Warn("Web: room %q not found", slug)
		p.renderError(w, http.StatusNotFound, msgRoomNotFound)
		return
	}
	p.logger.Error("Web: failed to get room %q: %v", slug, err)
	p.renderError(w, http.StatusInternalServerError, msgInternal)
}

func (p *Pages) renderError(w http.ResponseWriter, status int, message string) {
	p.render(w, status, "error", errorPage{
		page:    p.newPage(strconv.Itoa(status)+" | Alejandrums", ""),
		Status:  status,
		Message: message,
	})
}
