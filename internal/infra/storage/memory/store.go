package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/alejandrums/internal/domain"
	"github.com/m04kA/alejandrums/pkg/types"
)

// Store хранилище в памяти процесса. Используется для локальной разработки и тестов
type Store struct {
	mu           sync.RWMutex
	rooms        map[int64]*domain.Room
	bookings     map[int64]*domain.Booking
	byReference  map[string]int64
	reservations map[string]domain.Reservation // ключ: domain.SlotID
	contacts     []*domain.ContactMessage
	nextBooking  int64
	nextContact  int64

	// demoToday текущий день для демо-резервов; nil - без демо-данных
	demoToday func() types.Date

	// txMu сериализует транзакционные секции (см. TransactionManager)
	txMu sync.Mutex
	now  func() time.Time
}

// NewStore создаёт пустое хранилище
func NewStore() *Store {
	return &Store{
		rooms:        make(map[int64]*domain.Room),
		bookings:     make(map[int64]*domain.Booking),
		byReference:  make(map[string]int64),
		reservations: make(map[string]domain.Reservation),
		now:          time.Now,
	}
}

// AddRoom добавляет или заменяет зал
func (s *Store) AddRoom(room domain.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := room
	r.Equipment = append([]string(nil), room.Equipment...)
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
		r.UpdatedAt = r.CreatedAt
	}
	s.rooms[r.ID] = &r
}

// AddReservation добавляет резерв без бронирования (демо-данные)
// Возвращает domain.ErrSlotTaken, если час уже занят
func (s *Store) AddReservation(res domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reservations[res.Key()]; ok {
		return domain.ErrSlotTaken
	}
	s.reservations[res.Key()] = res
	return nil
}

// Rooms репозиторий залов поверх хранилища
func (s *Store) Rooms() *RoomRepository { return &RoomRepository{store: s} }

// Bookings репозиторий бронирований поверх хранилища
func (s *Store) Bookings() *BookingRepository { return &BookingRepository{store: s} }

// Contacts репозиторий сообщений поверх хранилища
func (s *Store) Contacts() *ContactRepository { return &ContactRepository{store: s} }

// RoomRepository залы в памяти
type RoomRepository struct {
	store *Store
}

// List возвращает активные залы по возрастанию ID
func (r *RoomRepository) List(_ context.Context) ([]*domain.Room, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rooms := make([]*domain.Room, 0, len(r.store.rooms))
	for _, room := range r.store.rooms {
		if room.Active {
			rooms = append(rooms, cloneRoom(room))
		}
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms, nil
}

// GetByID получает зал по ID
func (r *RoomRepository) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	room, ok := r.store.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return cloneRoom(room), nil
}

// GetBySlug получает зал по slug без учёта регистра
func (r *RoomRepository) GetBySlug(_ context.Context, slug string) (*domain.Room, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, room := range r.store.rooms {
		if strings.EqualFold(room.Slug, slug) {
			return cloneRoom(room), nil
		}
	}
	return nil, domain.ErrRoomNotFound
}

// BookingRepository бронирования и резервы в памяти
type BookingRepository struct {
	store *Store
}

// Create сохраняет бронирование и его резервы атомарно
func (r *BookingRepository) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, h := range booking.Hours {
		if _, ok := s.reservations[domain.SlotID(booking.RoomID, booking.Date, h)]; ok {
			return nil, domain.ErrSlotTaken
		}
	}
	for _, res := range s.demoReservations(booking.RoomID, booking.Date) {
		for _, h := range booking.Hours {
			if h == res.Hour {
				return nil, domain.ErrSlotTaken
			}
		}
	}

	s.nextBooking++
	booking.ID = s.nextBooking
	booking.CreatedAt = s.now()

	stored := cloneBooking(booking)
	s.bookings[stored.ID] = stored
	s.byReference[stored.Reference] = stored.ID
	for _, res := range stored.Reservations() {
		s.reservations[res.Key()] = res
	}

	return booking, nil
}

// GetByReference получает бронирование по публичному идентификатору
func (r *BookingRepository) GetByReference(_ context.Context, reference string) (*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.byReference[reference]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return cloneBooking(r.store.bookings[id]), nil
}

// GetReservations возвращает резервы зала на дату по возрастанию часа
func (r *BookingRepository) GetReservations(_ context.Context, roomID int64, date types.Date) ([]domain.Reservation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	reservations := make([]domain.Reservation, 0)
	taken := make(map[int]bool)
	for _, res := range r.store.reservations {
		if res.RoomID == roomID && res.Date == date {
			reservations = append(reservations, res)
			taken[res.Hour] = true
		}
	}
	// Бронирование, сделанное до смены дня, важнее демо-резерва на тот же час
	for _, res := range r.store.demoReservations(roomID, date) {
		if !taken[res.Hour] {
			reservations = append(reservations, res)
		}
	}
	sort.Slice(reservations, func(i, j int) bool { return reservations[i].Hour < reservations[j].Hour })
	return reservations, nil
}

// ContactRepository сообщения в памяти
type ContactRepository struct {
	store *Store
}

// Create сохраняет сообщение
func (r *ContactRepository) Create(_ context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextContact++
	msg.ID = s.nextContact
	msg.CreatedAt = s.now()

	stored := *msg
	s.contacts = append(s.contacts, &stored)
	return msg, nil
}

// Messages возвращает копии сохранённых сообщений
func (r *ContactRepository) Messages() []domain.ContactMessage {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.ContactMessage, len(r.store.contacts))
	for i, m := range r.store.contacts {
		out[i] = *m
	}
	return out
}

func cloneRoom(room *domain.Room) *domain.Room {
	c := *room
	c.Equipment = append([]string(nil), room.Equipment...)
	return &c
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	c := *b
	c.Hours = append([]int(nil), b.Hours...)
	return &c
}
