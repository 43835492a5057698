package area

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с зонами парковки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория зон
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает зону по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Area, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByName получает зону по уникальному имени
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Area, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name}, "GetByName")
}

// GetAny возвращает произвольную существующую зону
// Используется резолвером слотов как fallback, когда зона из таблицы
// диапазонов отсутствует в БД. Если зон нет вообще, возвращает ErrNoAreas
func (r *Repository) GetAny(ctx context.Context) (*domain.Area, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"area_type",
		"size",
		"color",
		"status",
		"created_at",
		"updated_at",
	).
		From("areas").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAny - build select query: %v", ErrBuildQuery, err)
	}

	area, err := r.scanOne(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrNoAreas
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetAny - scan area: %v", ErrScanRow, err)
	}

	return area, nil
}

func (r *Repository) getOne(ctx context.Context, pred squirrel.Eq, method string) (*domain.Area, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"area_type",
		"size",
		"color",
		"status",
		"created_at",
		"updated_at",
	).
		From("areas").
		Where(pred).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	area, err := r.scanOne(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAreaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan area: %v", ErrScanRow, method, err)
	}

	return area, nil
}

func (r *Repository) scanOne(row *sql.Row) (*domain.Area, error) {
	var area domain.Area
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&area.ID,
		&area.Name,
		&area.Type,
		&area.Size,
		&area.Color,
		&area.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	area.CreatedAt = createdAt.Time
	area.UpdatedAt = updatedAt.Time

	return &area, nil
}

// Delete удаляет зону; принадлежащие ей места удаляются каскадом на уровне БД
// Защита от удаления зон с будущими бронированиями выполняется сервисным слоем
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("areas").
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
		return ErrAreaNotFound
	}

	return nil
}
