package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBookingHandler "github.com/m04kA/alejandrums/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/alejandrums/internal/api/handlers/get_booking"
	getRoomHandler "github.com/m04kA/alejandrums/internal/api/handlers/get_room"
	getRoomAvailabilityHandler "github.com/m04kA/alejandrums/internal/api/handlers/get_room_availability"
	getRoomsHandler "github.com/m04kA/alejandrums/internal/api/handlers/get_rooms"
	quoteBookingHandler "github.com/m04kA/alejandrums/internal/api/handlers/quote_booking"
	submitContactHandler "github.com/m04kA/alejandrums/internal/api/handlers/submit_contact"
	"github.com/m04kA/alejandrums/internal/api/middleware"
	cache "github.com/m04kA/alejandrums/internal/infra/cache/availability"
	"github.com/m04kA/alejandrums/internal/infra/storage/memory"
	"github.com/m04kA/alejandrums/internal/integrations/payment"
	"github.com/m04kA/alejandrums/internal/service/bookings"
	bookingModels "github.com/m04kA/alejandrums/internal/service/bookings/models"
	"github.com/m04kA/alejandrums/internal/service/contact"
	"github.com/m04kA/alejandrums/internal/service/rooms"
	roomModels "github.com/m04kA/alejandrums/internal/service/rooms/models"
	createBooking "github.com/m04kA/alejandrums/internal/usecase/create_booking"
	getRoomAvailability "github.com/m04kA/alejandrums/internal/usecase/get_room_availability"
	quoteBooking "github.com/m04kA/alejandrums/internal/usecase/quote_booking"
	"github.com/m04kA/alejandrums/pkg/logger"
	"github.com/m04kA/alejandrums/pkg/metrics"
	"github.com/m04kA/alejandrums/pkg/types"
)

type testAPI struct {
	handler  http.Handler
	metrics  *metrics.Metrics
	today    types.Date
	tomorrow string
}

func newTestAPI(t *testing.T, limiter *middleware.RateLimiter) *testAPI {
	t.Helper()

	loc := time.UTC
	log := logger.NewNop()
	today := types.NewDate(time.Now().In(loc))
	store := memory.NewSeededStore(today)
	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())

	roomSvc := rooms.NewService(store.Rooms(), log)
	bookingSvc := bookings.NewService(store.Bookings(), log)
	contactSvc := contact.NewService(store.Contacts(), log)

	h := Handlers{
		GetRooms: getRoomsHandler.NewHandler(roomSvc, log),
		GetRoom:  getRoomHandler.NewHandler(roomSvc, log),
		GetRoomAvailability: getRoomAvailabilityHandler.NewHandler(
			getRoomAvailability.NewUseCase(store.Rooms(), store.Bookings(), cache.NopCache{}, loc, log), log),
		QuoteBooking: quoteBookingHandler.NewHandler(quoteBooking.NewUseCase(store.Rooms(), log), log),
		CreateBooking: createBookingHandler.NewHandler(createBooking.NewUseCase(
			store.Rooms(), store.Bookings(), payment.NewSimulator(0, log), cache.NopCache{},
			memory.NewTransactionManager(store), m, loc, log,
		), log),
		GetBooking:    getBookingHandler.NewHandler(bookingSvc, log),
		SubmitContact: submitContactHandler.NewHandler(contactSvc, log),
	}

	r := NewRouter(h, Options{Metrics: m, RateLimiter: limiter, Logger: log})

	return &testAPI{handler: r, metrics: m, today: today, tomorrow: today.AddDays(1).String()}
}

func (a *testAPI) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	a := newTestAPI(t, nil)

	rec := a.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRooms(t *testing.T) {
	a := newTestAPI(t, nil)

	rec := a.do(http.MethodGet, "/api/v1/rooms", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list roomModels.RoomListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Rooms, 3)
	assert.Equal(t, "sala-a", list.Rooms[0].Slug)
	assert.Equal(t, "$15.000", list.Rooms[0].PricePerHourLabel)

	rec = a.do(http.MethodGet, "/api/v1/rooms/sala-c", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var room roomModels.RoomResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &room))
	assert.Equal(t, int64(20000), room.PricePerHour)

	rec = a.do(http.MethodGet, "/api/v1/rooms/sala-z", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAvailability(t *testing.T) {
	a := newTestAPI(t, nil)

	rec := a.do(http.MethodGet, "/api/v1/rooms/1/availability?date="+a.tomorrow, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp getRoomAvailabilityHandler.AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 13)
	assert.Equal(t, "1-"+a.tomorrow+"-9", resp.Slots[0].ID)
	assert.Equal(t, "reserved", resp.Slots[0].Status)
	assert.Equal(t, "available", resp.Slots[1].Status)
	assert.Equal(t, "reserved", resp.Slots[5].Status) // 14:00
	assert.Equal(t, "21:00 - 22:00", resp.Slots[12].Label)
	assert.Equal(t, 11, resp.AvailableCount)
	assert.True(t, resp.HasPreviousDay)
}

func TestAvailability_Errors(t *testing.T) {
	a := newTestAPI(t, nil)

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{name: "missing date", target: "/api/v1/rooms/1/availability", wantStatus: http.StatusBadRequest},
		{name: "bad date", target: "/api/v1/rooms/1/availability?date=ayer", wantStatus: http.StatusBadRequest},
		{name: "past", target: "/api/v1/rooms/1/availability?date=" + a.today.AddDays(-1).String(), wantStatus: http.StatusBadRequest},
		{name: "too far", target: "/api/v1/rooms/1/availability?date=" + a.today.AddDays(31).String(), wantStatus: http.StatusBadRequest},
		{name: "unknown room", target: "/api/v1/rooms/99/availability?date=" + a.tomorrow, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"message"`)
		})
	}
}

func TestQuote(t *testing.T) {
	a := newTestAPI(t, nil)

	rec := a.do(http.MethodPost, "/api/v1/rooms/2/quote", `{"date":"`+a.tomorrow+`","hours":[15,14,15]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp quoteBookingHandler.QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []int{14, 15}, resp.Hours)
	assert.Equal(t, int64(24000), resp.TotalPrice)
	assert.Equal(t, int64(12000), resp.InitialPayment)
	assert.Equal(t, "14:00 - 16:00", resp.TimeRange)

	rec = a.do(http.MethodPost, "/api/v1/rooms/2/quote", `{"date":"`+a.tomorrow+`","hours":[22]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAndGetBooking(t *testing.T) {
	a := newTestAPI(t, nil)

	body := `{"roomId":3,"date":"` + a.tomorrow + `","hours":[20,19],` +
		`"clientName":"Ana Rojas","clientEmail":"ana@example.cl","clientPhone":"+56 9 8765 4321"}`

	rec := a.do(http.MethodPost, "/api/v1/bookings", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created bookingModels.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, []int{19, 20}, created.Hours)
	assert.Equal(t, int64(40000), created.TotalPrice)
	assert.Equal(t, int64(20000), created.PaidAmount)
	assert.Equal(t, int64(20000), created.RemainingAmount)
	assert.Equal(t, "partial", created.Status)
	assert.Equal(t, "Sala C", created.RoomName)
	assert.Equal(t, float64(1), testutil.ToFloat64(a.metrics.BookingsCreated))
	assert.Equal(t, float64(2), testutil.ToFloat64(a.metrics.BookedHours))

	rec = a.do(http.MethodGet, "/api/v1/bookings/"+created.Reference, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched bookingModels.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "19:00 - 21:00", fetched.TimeRange)

	// повторная бронь тех же часов
	rec = a.do(http.MethodPost, "/api/v1/bookings", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, float64(1), testutil.ToFloat64(a.metrics.BookingConflicts))
}

func TestCreateBooking_Errors(t *testing.T) {
	a := newTestAPI(t, nil)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "unknown field", body: `{"roomId":1,"foo":1}`, wantStatus: http.StatusBadRequest},
		{name: "bad date", body: `{"roomId":1,"date":"mañana","hours":[10]}`, wantStatus: http.StatusBadRequest},
		{
			name:       "missing contact",
			body:       `{"roomId":1,"date":"` + a.tomorrow + `","hours":[10],"clientName":"Ana"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown room",
			body: `{"roomId":42,"date":"` + a.tomorrow + `","hours":[10],` +
				`"clientName":"Ana","clientEmail":"ana@example.cl","clientPhone":"123"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name: "reserved slot",
			body: `{"roomId":1,"date":"` + a.tomorrow + `","hours":[14],` +
				`"clientName":"Ana","clientEmail":"ana@example.cl","clientPhone":"123"}`,
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(http.MethodPost, "/api/v1/bookings", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestGetBooking_NotFound(t *testing.T) {
	a := newTestAPI(t, nil)

	rec := a.do(http.MethodGet, "/api/v1/bookings/6f1c2a4e-7d1b-4a57-9f4e-3c2b1a0d9e8f", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitContact(t *testing.T) {
	a := newTestAPI(t, nil)

	rec := a.do(http.MethodPost, "/api/v1/contact", `{"name":"Pedro","email":"pedro@example.cl","message":"Hola"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = a.do(http.MethodPost, "/api/v1/contact", `{"name":"Pedro","email":"pedro","message":"Hola"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimitedPosts(t *testing.T) {
	a := newTestAPI(t, middleware.NewRateLimiter(1, 1, logger.NewNop()))

	body := `{"name":"Pedro","email":"pedro@example.cl","message":"Hola"}`

	rec := a.do(http.MethodPost, "/api/v1/contact", body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = a.do(http.MethodPost, "/api/v1/contact", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// GET не ограничивается
	rec = a.do(http.MethodGet, "/api/v1/rooms", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	a := newTestAPI(t, nil)

	a.do(http.MethodGet, "/api/v1/rooms/sala-a", "")

	rec := a.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1),
		testutil.ToFloat64(a.metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/rooms/{slug}", "200")))
}
