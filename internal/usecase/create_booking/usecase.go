package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/alejandrums/internal/domain"
	"github.com/m04kA/alejandrums/internal/integrations/payment"
	"github.com/m04kA/alejandrums/pkg/txmanager"
	"github.com/m04kA/alejandrums/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	payments     PaymentGateway
	cache        AvailabilityCache
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	payments PaymentGateway,
	cache AvailabilityCache,
	txManager TransactionManager,
	metrics Metrics,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		payments:     payments,
		cache:        cache,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{Location: loc},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка занятости и запись резервов идут в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%d, date=%s, hours=%v", req.RoomID, req.Date, req.Hours)

	// 1. Валидация входных данных
	hours, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	today := types.NewDate(now)

	// 2. Получаем зал
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}
	if !room.IsBookable() {
		uc.logger.Warn("CreateBooking: room id=%d is inactive", req.RoomID)
		return nil, ErrRoomNotFound
	}

	// 3. Окно бронирования
	if err := validateDate(req.Date, today); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Предварительная проверка занятости, чтобы не списывать деньги за занятые часы
	reservations, err := uc.bookingRepo.GetReservations(ctx, room.ID, req.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}
	if taken := unavailableHours(req.Date, hours, reservations, now); len(taken) > 0 {
		uc.logger.Warn("CreateBooking: hours %v not available for room=%d, date=%s", taken, room.ID, req.Date)
		uc.metrics.ObserveConflict()
		return nil, fmt.Errorf("%w: hours %v", ErrSlotNotAvailable, taken)
	}

	// 5. Расчёт стоимости
	quote := domain.NewQuote(hours, room.PricePerHour)
	reference := uuid.NewString()

	// 6. Предоплата
	charge, err := uc.payments.Charge(ctx, payment.ChargeRequest{
		Reference:     reference,
		Amount:        quote.InitialPayment,
		Currency:      payment.CurrencyCLP,
		Description:   fmt.Sprintf("%s %s %s", room.Name, req.Date, quote.TimeRange),
		CustomerEmail: req.ClientEmail,
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: payment failed for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	var result *domain.Booking

	// 7. Повторная проверка и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Резервы зала на дату с блокировкой
		reservations, err := uc.bookingRepo.GetReservations(txCtx, room.ID, req.Date)
		if err != nil {
			if errors.Is(err, domain.ErrSlotTaken) {
				return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
			}
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 7.2. Проверяем, что никто не занял часы, пока шёл платёж
		if taken := unavailableHours(req.Date, hours, reservations, uc.timeProvider.Now()); len(taken) > 0 {
			return fmt.Errorf("%w: hours %v", ErrSlotNotAvailable, taken)
		}

		// 7.3. Создаём бронирование с денормализацией данных зала
		booking := &domain.Booking{
			Reference:   reference,
			RoomID:      room.ID,
			RoomName:    room.Name,
			ClientName:  req.ClientName,
			ClientEmail: req.ClientEmail,
			ClientPhone: req.ClientPhone,
			Date:        req.Date,
			Hours:       hours,
			TotalPrice:  quote.TotalPrice,
			PaidAmount:  charge.Amount,
			Status:      domain.StatusPartial,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, domain.ErrSlotTaken) {
				return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if errors.Is(err, txmanager.ErrSerializationFailure) {
		err = fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
	}
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Warn("CreateBooking: slot taken during payment, reference=%s: %v", reference, err)
			uc.metrics.ObserveConflict()
		} else {
			uc.logger.Error("CreateBooking: transaction failed, reference=%s: %v", reference, err)
		}
		uc.refund(ctx, charge.ID)

		if !errors.Is(err, ErrSlotNotAvailable) && !errors.Is(err, ErrInternal) {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	// 8. Сбрасываем кэш доступности
	if err := uc.cache.Invalidate(ctx, room.ID, req.Date); err != nil {
		uc.logger.Warn("CreateBooking: failed to invalidate cache for room=%d, date=%s: %v", room.ID, req.Date, err)
	}

	uc.metrics.ObserveBooking(len(result.Hours))
	uc.logger.Info("CreateBooking: successfully created booking id=%d, reference=%s, total=%d, paid=%d",
		result.ID, result.Reference, result.TotalPrice, result.PaidAmount)

	return &Response{
		Booking:   result,
		Room:      room,
		PaymentID: charge.ID,
	}, nil
}

// refund возвращает предоплату, если бронирование не удалось сохранить
func (uc *UseCase) refund(ctx context.Context, chargeID string) {
	if err := uc.payments.Refund(context.WithoutCancel(ctx), chargeID); err != nil {
		uc.logger.Error("CreateBooking: failed to refund charge id=%s: %v", chargeID, err)
	}
}
