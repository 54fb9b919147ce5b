package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/alejandrums/internal/domain"
	"github.com/m04kA/alejandrums/pkg/dbmetrics"
	"github.com/m04kA/alejandrums/pkg/psqlbuilder"
	"github.com/m04kA/alejandrums/pkg/types"
)

// Коды ошибок PostgreSQL, означающие конкурентную запись тех же часов
const (
	uniqueViolation      = "23505"
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

var bookingColumns = []string{
	"id",
	"reference",
	"room_id",
	"room_name",
	"client_name",
	"client_email",
	"client_phone",
	"booking_date",
	"hours",
	"total_price",
	"paid_amount",
	"status",
	"created_at",
}

// Repository репозиторий для работы с бронированиями и резервами часов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование и по одному резерву на каждый час
// Должен вызываться внутри транзакции, иначе при конфликте останется бронирование без резервов
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	hours := make([]int64, len(booking.Hours))
	for i, h := range booking.Hours {
		hours[i] = int64(h)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"reference",
			"room_id",
			"room_name",
			"client_name",
			"client_email",
			"client_phone",
			"booking_date",
			"hours",
			"total_price",
			"paid_amount",
			"status",
		).
		Values(
			booking.Reference,
			booking.RoomID,
			booking.RoomName,
			booking.ClientName,
			booking.ClientEmail,
			booking.ClientPhone,
			booking.Date,
			pq.Array(hours),
			booking.TotalPrice,
			booking.PaidAmount,
			booking.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt)
	if err != nil {
		if isSerializationFailure(err) {
			return nil, fmt.Errorf("%w: room=%d, date=%s: %v", ErrSlotTaken, booking.RoomID, booking.Date, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	booking.CreatedAt = createdAt.Time

	insertHours := psqlbuilder.Insert("booking_hours").
		Columns("booking_id", "room_id", "booking_date", "hour")
	for _, res := range booking.Reservations() {
		insertHours = insertHours.Values(*res.BookingID, res.RoomID, res.Date, res.Hour)
	}

	query, args, err = insertHours.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build hours insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) || isSerializationFailure(err) {
			return nil, fmt.Errorf("%w: room=%d, date=%s: %v", ErrSlotTaken, booking.RoomID, booking.Date, err)
		}
		return nil, fmt.Errorf("%w: Create - execute hours insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByReference получает бронирование по публичному идентификатору
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"reference": reference}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetReservations возвращает занятые часы зала на дату
// Внутри транзакции строки блокируются (FOR UPDATE) до её завершения
func (r *Repository) GetReservations(ctx context.Context, roomID int64, date types.Date) ([]domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("room_id", "booking_date", "hour", "booking_id").
		From("booking_hours").
		Where(squirrel.Eq{"room_id": roomID, "booking_date": date}).
		OrderBy("hour")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if isSerializationFailure(err) {
			return nil, fmt.Errorf("%w: room=%d, date=%s: %v", ErrSlotTaken, roomID, date, err)
		}
		return nil, fmt.Errorf("%w: GetReservations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	for rows.Next() {
		var res domain.Reservation
		var bookingID sql.NullInt64

		if err := rows.Scan(&res.RoomID, &res.Date, &res.Hour, &bookingID); err != nil {
			return nil, fmt.Errorf("%w: GetReservations - scan row: %v", ErrScanRow, err)
		}
		if bookingID.Valid {
			id := bookingID.Int64
			res.BookingID = &id
		}

		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func scanBooking(row *sql.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var hours pq.Int64Array
	var createdAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.RoomID,
		&booking.RoomName,
		&booking.ClientName,
		&booking.ClientEmail,
		&booking.ClientPhone,
		&booking.Date,
		&hours,
		&booking.TotalPrice,
		&booking.PaidAmount,
		&booking.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Hours = make([]int, len(hours))
	for i, h := range hours {
		booking.Hours[i] = int(h)
	}
	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// isSerializationFailure конфликт SERIALIZABLE транзакций или взаимная блокировка
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == serializationFailure || pqErr.Code == deadlockDetected
}
