package create_booking

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	vehicleClient "github.com/m04kA/SMC-ParkingService/internal/integrations/vehicleservice"
	"github.com/m04kA/SMC-ParkingService/internal/service/slots"
)

// UseCase use case создания бронирования
//
// Порядок шагов: валидация -> проверка транспорта -> резолв места ->
// нормализация интервала -> проверка прошлого -> проверка конфликтов -> вставка.
// Все обращения к БД выполняются в одной сериализуемой транзакции, поэтому
// место, созданное резолвером, откатывается вместе с несостоявшимся
// бронированием - неиспользуемых мест после отказа не остается
type UseCase struct {
	bookingRepo   BookingRepository
	resolver      SlotResolver
	vehicleClient VehicleServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	qrBaseURL     string
	location      *time.Location
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	resolver SlotResolver,
	vehicleClient VehicleServiceClient,
	txManager TransactionManager,
	qrBaseURL string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		resolver:      resolver,
		vehicleClient: vehicleClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		qrBaseURL:     qrBaseURL,
		location:      time.Local,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, vehicle=%d, slot=%s, date=%s, time=%s-%s",
		req.UserID, req.VehicleID, req.Slot, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем транспорт: существует, принадлежит пользователю, одобрен.
	// Чужой и несуществующий транспорт дают одинаковую ошибку
	vehicle, err := uc.vehicleClient.GetOwnedVehicle(ctx, req.VehicleID, req.UserID)
	if err != nil {
		if errors.Is(err, vehicleClient.ErrVehicleNotFound) {
			uc.logger.Warn("CreateBooking: vehicle id=%d not available for user=%d", req.VehicleID, req.UserID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CreateBooking: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}
	if !vehicle.IsApproved() {
		uc.logger.Warn("CreateBooking: vehicle id=%d is not approved (status=%s)", vehicle.ID, vehicle.Status)
		return nil, ErrVehicleNotApproved
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking
	var spaceNumber string

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Резолвим место (может создать новую строку места)
		space, err := uc.resolver.Resolve(txCtx, req.Slot)
		if err != nil {
			switch {
			case errors.Is(err, slots.ErrInvalidSlotNumber):
				return ErrInvalidSlot
			case errors.Is(err, slots.ErrNoAreasDefined):
				return ErrNoAreasDefined
			case errors.Is(err, slots.ErrCapacityExceeded):
				return ErrCapacityExceeded
			default:
				return fmt.Errorf("%w: failed to resolve slot: %v", ErrInternal, err)
			}
		}
		spaceNumber = space.Number

		// 3.2. Нормализуем интервал (правило ночевки)
		candidate, err := buildRange(req, uc.location)
		if err != nil {
			return err
		}

		// 3.3. Отклоняем бронирования, начинающиеся в прошлом
		if candidate.StartsBefore(now) {
			uc.logger.Warn("CreateBooking: start %s is in the past", candidate.Start)
			return ErrPastStartTime
		}

		// 3.4. Активные бронирования места, с блокировкой FOR UPDATE
		// на окно check-then-insert
		existing, err := uc.bookingRepo.GetActiveBySpace(txCtx, space.ID, now)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.5. Проверка пересечения интервалов
		if hasConflict(existing, candidate) {
			uc.logger.Warn("CreateBooking: slot %s already booked for %s-%s",
				req.Slot, candidate.Start, candidate.End)
			return ErrTimeConflict
		}

		// 3.6. Сохраняем бронирование
		booking := &domain.Booking{
			UserID:    req.UserID,
			VehicleID: vehicle.ID,
			SpaceID:   space.ID,
			StartTime: candidate.Start,
			EndTime:   candidate.End,
			QRCodeURL: uc.confirmationURL(space.Number),
			Status:    domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Страховочный exclusion constraint сработал раньше нас
			if errors.Is(err, bookingRepo.ErrIntervalTaken) {
				return ErrTimeConflict
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for space=%s", result.ID, spaceNumber)

	return &Response{
		ID:          result.ID,
		VehicleID:   result.VehicleID,
		SpaceID:     result.SpaceID,
		SpaceNumber: spaceNumber,
		StartTime:   result.StartTime,
		EndTime:     result.EndTime,
		Status:      string(result.Status),
		QRCodeURL:   result.QRCodeURL,
		CreatedAt:   result.CreatedAt,
	}, nil
}

// confirmationURL собирает ссылку-подтверждение с номером слота внутри
func (uc *UseCase) confirmationURL(spaceNumber string) string {
	return fmt.Sprintf("%s/bookings/confirm?slot=%s", uc.qrBaseURL, url.QueryEscape(spaceNumber))
}
