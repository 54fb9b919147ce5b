package get_room_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/alejandrums/internal/domain"
	"github.com/m04kA/alejandrums/pkg/types"
)

// UseCase use case получения свободных часов зала на дату
type UseCase struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	cache           AvailabilityCache
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// loc - часовой пояс, в котором считаются "сегодня" и текущий час
func NewUseCase(
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	cache AvailabilityCache,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		cache:           cache,
		timeProvider:    &RealTimeProvider{Location: loc},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomAvailability: room=%d, date=%s", req.RoomID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRoomAvailability: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	today := types.NewDate(now)

	// 2. Получаем зал
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			uc.logger.Warn("GetRoomAvailability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetRoomAvailability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}
	if !room.IsBookable() {
		uc.logger.Warn("GetRoomAvailability: room id=%d is inactive", req.RoomID)
		return nil, ErrRoomNotFound
	}

	// 3. Дата должна попадать в окно бронирования
	if err := validateDate(req.Date, today); err != nil {
		uc.logger.Warn("GetRoomAvailability: date validation failed: %v", err)
		return nil, err
	}

	// 4. Занятые часы
	reserved, err := uc.reservedHours(ctx, req.RoomID, req.Date)
	if err != nil {
		uc.logger.Error("GetRoomAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Генерируем слоты
	slots := domain.GenerateDaySlots(room.ID, req.Date, reserved, now)

	available := 0
	for _, s := range slots {
		if s.IsAvailable() {
			available++
		}
	}

	uc.logger.Info("GetRoomAvailability: room=%d, date=%s, available=%d/%d",
		room.ID, req.Date, available, len(slots))

	return &Response{
		Room:           room,
		Date:           req.Date,
		Today:          today,
		LastDate:       domain.LastBookableDate(today),
		Slots:          slots,
		AvailableCount: available,
	}, nil
}

// reservedHours читает занятые часы через кэш
// Ошибки кэша не фатальны - идём в хранилище.
// Запись в кэш идёт с версией из Get, чтобы бронирование между чтением и записью не оставило устаревших данных
func (uc *UseCase) reservedHours(ctx context.Context, roomID int64, date types.Date) (domain.ReservedHours, error) {
	hours, version, found, err := uc.cache.Get(ctx, roomID, date)
	if err != nil {
		uc.logger.Warn("GetRoomAvailability: cache get failed for room=%d, date=%s: %v", roomID, date, err)
	}
	if found && err == nil {
		set := make(domain.ReservedHours, len(hours))
		for _, h := range hours {
			set[h] = struct{}{}
		}
		return set, nil
	}

	reservations, err := uc.reservationRepo.GetReservations(ctx, roomID, date)
	if err != nil {
		return nil, err
	}

	set := domain.NewReservedHours(reservations)
	if err := uc.cache.Set(ctx, roomID, date, set.Hours(), version); err != nil {
		uc.logger.Warn("GetRoomAvailability: cache set failed for room=%d, date=%s: %v", roomID, date, err)
	}

	return set, nil
}
