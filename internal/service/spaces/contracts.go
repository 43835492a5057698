package spaces

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SpaceRepository интерфейс репозитория мест
type SpaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
	Delete(ctx context.Context, id int64) error
}

// AreaRepository интерфейс репозитория зон
type AreaRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Area, error)
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	HasFutureBySpace(ctx context.Context, spaceID int64, now time.Time) (bool, error)
	HasFutureByArea(ctx context.Context, areaID int64, now time.Time) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
