package space

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

// pqUniqueViolation код ошибки PostgreSQL при нарушении unique constraint
const pqUniqueViolation = "23505"

// Repository репозиторий для работы с парковочными местами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мест
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое место
// Нарушение уникальности номера транслируется в ErrDuplicateNumber,
// чтобы вызывающий код мог отличить гонку за номер от прочих сбоев
func (r *Repository) Create(ctx context.Context, space *domain.Space) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("spaces").
		Columns(
			"space_number",
			"area_id",
			"qr_code",
			"status",
		).
		Values(
			space.Number,
			space.AreaID,
			space.QRCode,
			space.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&space.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrDuplicateNumber
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	return space, nil
}

// GetByID получает место по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByNumber получает место по его уникальному номеру
func (r *Repository) GetByNumber(ctx context.Context, number string) (*domain.Space, error) {
	return r.getOne(ctx, squirrel.Eq{"space_number": number}, "GetByNumber")
}

func (r *Repository) getOne(ctx context.Context, pred squirrel.Eq, method string) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"space_number",
		"area_id",
		"qr_code",
		"status",
		"created_at",
		"updated_at",
	).
		From("spaces").
		Where(pred).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	var space domain.Space
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&space.ID,
		&space.Number,
		&space.AreaID,
		&space.QRCode,
		&space.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan space: %v", ErrScanRow, method, err)
	}

	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	return &space, nil
}

// Count возвращает текущее количество мест во всей системе
// Вызывается внутри сериализуемой транзакции: изоляция гарантирует,
// что параллельная вставка, меняющая результат, откатит одну из транзакций
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("spaces").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// ExistingNumbers возвращает множество номеров из numbers, которые уже заняты
// Используется массовым созданием для подсчета пропущенных мест одним запросом
func (r *Repository) ExistingNumbers(ctx context.Context, numbers []string) (map[string]bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("space_number").
		From("spaces").
		Where(squirrel.Eq{"space_number": numbers}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ExistingNumbers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ExistingNumbers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	existing := make(map[string]bool)
	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return nil, fmt.Errorf("%w: ExistingNumbers - scan number: %v", ErrScanRow, err)
		}
		existing[number] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ExistingNumbers - rows error: %v", ErrScanRow, err)
	}

	return existing, nil
}

// Delete удаляет место
// Защита от удаления мест с будущими бронированиями выполняется сервисным слоем
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("spaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpaceNotFound
	}

	return nil
}
