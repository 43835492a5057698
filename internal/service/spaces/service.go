package spaces

import (
	"context"
	"errors"
	"fmt"

	areaRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/area"
	spaceRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/space"
)

// Service сервис управления жизненным циклом зон и мест
// Обеспечивает инвариант удаления: место или зона с незакончившимся
// бронированием удалены быть не могут
type Service struct {
	spaceRepo    SpaceRepository
	areaRepo     AreaRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса зон и мест
func NewService(
	spaceRepo SpaceRepository,
	areaRepo AreaRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		spaceRepo:    spaceRepo,
		areaRepo:     areaRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// DeleteSpace удаляет место, если у него нет бронирований с концом в будущем
// Проверка и удаление выполняются в одной сериализуемой транзакции,
// чтобы бронирование не могло вклиниться между ними
func (s *Service) DeleteSpace(ctx context.Context, spaceID int64) error {
	s.logger.Info("DeleteSpace: deleting space id=%d", spaceID)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := s.spaceRepo.GetByID(txCtx, spaceID); err != nil {
			if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
				return ErrSpaceNotFound
			}
			return fmt.Errorf("%w: DeleteSpace - space lookup: %v", ErrInternal, err)
		}

		now := s.timeProvider.Now()
		busy, err := s.bookingRepo.HasFutureBySpace(txCtx, spaceID, now)
		if err != nil {
			return fmt.Errorf("%w: DeleteSpace - booking check: %v", ErrInternal, err)
		}
		if busy {
			s.logger.Warn("DeleteSpace: space id=%d has future bookings, refusing to delete", spaceID)
			return ErrHasActiveBookings
		}

		if err := s.spaceRepo.Delete(txCtx, spaceID); err != nil {
			if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
				return ErrSpaceNotFound
			}
			return fmt.Errorf("%w: DeleteSpace - delete: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("DeleteSpace: successfully deleted space id=%d", spaceID)
	return nil
}

// DeleteArea удаляет зону вместе с её местами (каскад на уровне БД),
// если ни одно из мест зоны не занято бронированием с концом в будущем
func (s *Service) DeleteArea(ctx context.Context, areaID int64) error {
	s.logger.Info("DeleteArea: deleting area id=%d", areaID)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := s.areaRepo.GetByID(txCtx, areaID); err != nil {
			if errors.Is(err, areaRepo.ErrAreaNotFound) {
				return ErrAreaNotFound
			}
			return fmt.Errorf("%w: DeleteArea - area lookup: %v", ErrInternal, err)
		}

		now := s.timeProvider.Now()
		busy, err := s.bookingRepo.HasFutureByArea(txCtx, areaID, now)
		if err != nil {
			return fmt.Errorf("%w: DeleteArea - booking check: %v", ErrInternal, err)
		}
		if busy {
			s.logger.Warn("DeleteArea: area id=%d has future bookings, refusing to delete", areaID)
			return ErrHasActiveBookings
		}

		if err := s.areaRepo.Delete(txCtx, areaID); err != nil {
			if errors.Is(err, areaRepo.ErrAreaNotFound) {
				return ErrAreaNotFound
			}
			return fmt.Errorf("%w: DeleteArea - delete: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("DeleteArea: successfully deleted area id=%d", areaID)
	return nil
}
