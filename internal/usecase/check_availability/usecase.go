package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/space"
)

// UseCase use case проверки доступности места на интервал
// Чистое чтение без побочных эффектов: место не создается,
// бронирование не пишется, транзакция не нужна
type UseCase struct {
	spaceRepo    SpaceRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	spaceRepo SpaceRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		spaceRepo:    spaceRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		location:     time.Local,
		logger:       logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	space, err := uc.spaceRepo.GetByNumber(ctx, req.SpaceNumber)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("CheckAvailability: space number=%s not found", req.SpaceNumber)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("CheckAvailability: space lookup failed: %v", err)
		return nil, fmt.Errorf("%w: space lookup: %v", ErrInternal, err)
	}

	start, err := req.StartTime.OnDate(req.Date, uc.location)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	end, err := req.EndTime.OnDate(req.Date, uc.location)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	candidate := domain.NewTimeRange(start, end)

	now := uc.timeProvider.Now()
	bookings, err := uc.bookingRepo.GetActiveBySpace(ctx, space.ID, now)
	if err != nil {
		uc.logger.Error("CheckAvailability: bookings lookup failed: %v", err)
		return nil, fmt.Errorf("%w: bookings lookup: %v", ErrInternal, err)
	}

	available := true
	for _, b := range bookings {
		if b.ConflictsWith(candidate) {
			available = false
			break
		}
	}

	uc.logger.Info("CheckAvailability: space=%s %s-%s available=%t",
		req.SpaceNumber, candidate.Start, candidate.End, available)

	return &Response{
		SpaceNumber: space.Number,
		StartTime:   candidate.Start,
		EndTime:     candidate.End,
		Available:   available,
	}, nil
}

func validateRequest(req *Request) error {
	if req.SpaceNumber == "" {
		return fmt.Errorf("%w: spaceNumber is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() || req.StartTime.Validate() != nil {
		return fmt.Errorf("%w: invalid startTime", ErrInvalidInput)
	}
	if req.EndTime.IsZero() || req.EndTime.Validate() != nil {
		return fmt.Errorf("%w: invalid endTime", ErrInvalidInput)
	}
	return nil
}
