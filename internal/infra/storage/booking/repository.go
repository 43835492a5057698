package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

// pqExclusionViolation код ошибки PostgreSQL при нарушении exclusion constraint
// Срабатывает на страховочном ограничении непересечения интервалов
const pqExclusionViolation = "23P01"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Нарушение exclusion constraint по пересечению интервалов одного места
// транслируется в ErrIntervalTaken: это последний рубеж против двойного
// бронирования, основная проверка выполняется usecase-ом под FOR UPDATE
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"vehicle_id",
			"space_id",
			"start_time",
			"end_time",
			"qr_code_url",
			"status",
		).
		Values(
			booking.UserID,
			booking.VehicleID,
			booking.SpaceID,
			booking.StartTime,
			booking.EndTime,
			booking.QRCodeURL,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqExclusionViolation {
			return nil, ErrIntervalTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetActiveBySpace получает активные бронирования места, чей интервал
// еще не закончился к моменту now. Исторические бронирования остаются
// в таблице для аудита, но в проверке конфликтов не участвуют.
//
// Выборка ограничена одним местом: проверка конфликтов линейна по числу
// бронирований этого места, а не всей системы.
//
// Внутри транзакции добавляет FOR UPDATE, блокируя строки бронирований
// места на окно check-then-insert
func (r *Repository) GetActiveBySpace(ctx context.Context, spaceID int64, now time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"user_id",
		"vehicle_id",
		"space_id",
		"start_time",
		"end_time",
		"qr_code_url",
		"status",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"space_id": spaceID}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveBookingStatuses)}).
		Where(squirrel.Gt{"end_time": now}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveBySpace - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveBySpace - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// HasFutureBySpace проверяет, есть ли у места бронирование, которое
// еще не закончилось. Используется защитой удаления мест
func (r *Repository) HasFutureBySpace(ctx context.Context, spaceID int64, now time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"space_id": spaceID}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveBookingStatuses)}).
		Where(squirrel.Gt{"end_time": now}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasFutureBySpace - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasFutureBySpace - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// HasFutureByArea проверяет, есть ли незакончившееся бронирование
// хотя бы на одном месте зоны. Используется защитой удаления зон
func (r *Repository) HasFutureByArea(ctx context.Context, areaID int64, now time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings b").
		Join("spaces s ON s.id = b.space_id").
		Where(squirrel.Eq{"s.area_id": areaID}).
		Where(squirrel.Eq{"b.status": statusStrings(domain.ActiveBookingStatuses)}).
		Where(squirrel.Gt{"b.end_time": now}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasFutureByArea - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasFutureByArea - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.VehicleID,
			&booking.SpaceID,
			&booking.StartTime,
			&booking.EndTime,
			&booking.QRCodeURL,
			&booking.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// statusStrings конвертирует статусы в строки для squirrel.Eq
func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
