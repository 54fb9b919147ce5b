package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/alejandrums/internal/api/handlers"
	createBookingHandler "github.com/m04kA/alejandrums/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/alejandrums/internal/api/handlers/get_booking"
	getRoomHandler "github.com/m04kA/alejandrums/internal/api/handlers/get_room"
	getRoomAvailabilityHandler "github.com/m04kA/alejandrums/internal/api/handlers/get_room_availability"
	getRoomsHandler "github.com/m04kA/alejandrums/internal/api/handlers/get_rooms"
	quoteBookingHandler "github.com/m04kA/alejandrums/internal/api/handlers/quote_booking"
	submitContactHandler "github.com/m04kA/alejandrums/internal/api/handlers/submit_contact"
	"github.com/m04kA/alejandrums/internal/api/middleware"
	"github.com/m04kA/alejandrums/pkg/metrics"
)

// Handlers обработчики JSON API
type Handlers struct {
	GetRooms            *getRoomsHandler.Handler
	GetRoom             *getRoomHandler.Handler
	GetRoomAvailability *getRoomAvailabilityHandler.Handler
	QuoteBooking        *quoteBookingHandler.Handler
	CreateBooking       *createBookingHandler.Handler
	GetBooking          *getBookingHandler.Handler
	SubmitContact       *submitContactHandler.Handler
}

// Options инфраструктура роутера
type Options struct {
	// Metrics nil - метрики выключены
	Metrics     *metrics.Metrics
	MetricsPath string
	// RateLimiter nil - без ограничения частоты
	RateLimiter *middleware.RateLimiter
	Logger      middleware.Logger
}

// NewRouter собирает роутер с JSON API, /health и /metrics
// HTML страницы регистрируются в этом же роутере отдельно
func NewRouter(h Handlers, opts Options) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.Recovery(opts.Logger))

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))

		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, promhttp.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Залы и доступность
	api.HandleFunc("/rooms", h.GetRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{slug}", h.GetRoom.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId:[0-9]+}/availability", h.GetRoomAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId:[0-9]+}/quote", h.QuoteBooking.Handle).Methods(http.MethodPost)

	// Бронирования
	api.Handle("/bookings", Limit(opts.RateLimiter, http.HandlerFunc(h.CreateBooking.Handle))).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{reference}", h.GetBooking.Handle).Methods(http.MethodGet)

	// Контакты
	api.Handle("/contact", Limit(opts.RateLimiter, http.HandlerFunc(h.SubmitContact.Handle))).Methods(http.MethodPost)

	return r
}

// Limit оборачивает обработчик ограничителем частоты, если он задан
func Limit(limiter *middleware.RateLimiter, next http.Handler) http.Handler {
	if limiter == nil {
		return next
	}
	return limiter.Middleware(next)
}

func health(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
