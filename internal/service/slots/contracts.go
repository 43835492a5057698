package slots

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SpaceRepository интерфейс репозитория мест
type SpaceRepository interface {
	GetByNumber(ctx context.Context, number string) (*domain.Space, error)
	Create(ctx context.Context, space *domain.Space) (*domain.Space, error)
	Count(ctx context.Context) (int, error)
}

// AreaRepository интерфейс репозитория зон
type AreaRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Area, error)
	GetAny(ctx context.Context) (*domain.Area, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
