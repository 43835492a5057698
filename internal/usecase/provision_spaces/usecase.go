package provision_spaces

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	areaRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/area"
)

// UseCase use case массового создания мест
//
// Вся пачка выполняется в одной сериализуемой транзакции: либо создается
// целиком, либо не создается вообще. Пропуск уже существующих номеров -
// поштучное решение внутри цикла, но откат при сбое затрагивает всю пачку
type UseCase struct {
	spaceRepo     SpaceRepository
	areaRepo      AreaRepository
	txManager     TransactionManager
	totalCapacity int
	requestLimit  int
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	spaceRepo SpaceRepository,
	areaRepo AreaRepository,
	txManager TransactionManager,
	totalCapacity int,
	requestLimit int,
	logger Logger,
) *UseCase {
	return &UseCase{
		spaceRepo:     spaceRepo,
		areaRepo:      areaRepo,
		txManager:     txManager,
		totalCapacity: totalCapacity,
		requestLimit:  requestLimit,
		logger:        logger,
	}
}

// Execute выполняет массовое создание мест
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ProvisionSpaces: area=%d, prefix=%s, range=%d..%d",
		req.AreaID, req.Prefix, req.StartNumber, req.EndNumber)

	// 1. Валидация до любого обращения к БД
	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("ProvisionSpaces: validation failed: %v", err)
		return nil, err
	}

	rangeSize := req.EndNumber - req.StartNumber + 1
	numbers := make([]string, 0, rangeSize)
	for n := req.StartNumber; n <= req.EndNumber; n++ {
		numbers = append(numbers, spaceNumber(req.Prefix, n))
	}

	var resp Response

	// 2. Вся пачка - одна сериализуемая транзакция
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := uc.areaRepo.GetByID(txCtx, req.AreaID); err != nil {
			if errors.Is(err, areaRepo.ErrAreaNotFound) {
				return ErrAreaNotFound
			}
			return fmt.Errorf("%w: area lookup: %v", ErrInternal, err)
		}

		// 2.1. Потолок считается от живого количества мест на момент вызова.
		// Сериализуемая изоляция не дает двум конкурентным пачкам пройти
		// проверку по одному и тому же счетчику
		total, err := uc.spaceRepo.Count(txCtx)
		if err != nil {
			return fmt.Errorf("%w: count spaces: %v", ErrInternal, err)
		}
		if total+rangeSize > uc.totalCapacity {
			uc.logger.Warn("ProvisionSpaces: capacity exceeded, total=%d, requested=%d, ceiling=%d",
				total, rangeSize, uc.totalCapacity)
			return fmt.Errorf("%w: %d existing + %d requested > %d",
				ErrCapacityExceeded, total, rangeSize, uc.totalCapacity)
		}

		// 2.2. Уже занятые номера пропускаются, не прерывая пачку
		existing, err := uc.spaceRepo.ExistingNumbers(txCtx, numbers)
		if err != nil {
			return fmt.Errorf("%w: existing numbers lookup: %v", ErrInternal, err)
		}

		for n := req.StartNumber; n <= req.EndNumber; n++ {
			number := spaceNumber(req.Prefix, n)
			if existing[number] {
				resp.Skipped++
				continue
			}

			space := &domain.Space{
				Number: number,
				AreaID: req.AreaID,
				QRCode: qrCode(req.Prefix, n),
				Status: domain.SpaceAvailable,
			}

			if _, err := uc.spaceRepo.Create(txCtx, space); err != nil {
				// Любой сбой откатывает всю пачку
				return fmt.Errorf("%w: create space %s: %v", ErrInternal, number, err)
			}
			resp.Created++
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ProvisionSpaces: created=%d, skipped=%d for area=%d",
		resp.Created, resp.Skipped, req.AreaID)
	return &resp, nil
}

func (uc *UseCase) validateRequest(req *Request) error {
	if req.AreaID <= 0 {
		return fmt.Errorf("%w: areaID must be positive", ErrInvalidInput)
	}
	if req.Prefix == "" {
		return fmt.Errorf("%w: prefix is required", ErrInvalidInput)
	}
	if req.StartNumber > req.EndNumber {
		return fmt.Errorf("%w: inverted range %d..%d", ErrInvalidInput, req.StartNumber, req.EndNumber)
	}
	if req.StartNumber < 1 {
		return fmt.Errorf("%w: startNumber must be positive", ErrInvalidInput)
	}
	if size := req.EndNumber - req.StartNumber + 1; size > uc.requestLimit {
		return fmt.Errorf("%w: %d > %d", ErrRangeTooLarge, size, uc.requestLimit)
	}
	return nil
}

// spaceNumber детерминированный номер места из префикса и номера с ведущим нулем
func spaceNumber(prefix string, n int) string {
	return fmt.Sprintf("%s-%02d", prefix, n)
}

// qrCode детерминированный QR-код места
func qrCode(prefix string, n int) string {
	return fmt.Sprintf("QR-%s-%02d", prefix, n)
}
