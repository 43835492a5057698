package slots

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	areaRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/area"
	spaceRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/space"

	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Resolver сопоставляет внешний идентификатор слота с парковочным местом
// Неизвестные слоты создаются на лету: зона выводится из номера слота
// по таблице диапазонов из конфигурации
type Resolver struct {
	spaceRepo     SpaceRepository
	areaRepo      AreaRepository
	bands         []config.Band
	totalCapacity int
	logger        Logger
}

// NewResolver создает резолвер слотов
// Таблица диапазонов bands должна быть провалидирована при загрузке конфигурации
func NewResolver(spaceRepo SpaceRepository, areaRepo AreaRepository, bands []config.Band, totalCapacity int, logger Logger) *Resolver {
	return &Resolver{
		spaceRepo:     spaceRepo,
		areaRepo:      areaRepo,
		bands:         bands,
		totalCapacity: totalCapacity,
		logger:        logger,
	}
}

// Resolve возвращает место для внешнего идентификатора слота
//
// 1. Существующий номер возвращается как есть, без вывода зоны
// 2. Для нового номера зона выводится по таблице диапазонов
// 3. Если зоны из таблицы нет в БД, берется произвольная существующая,
//    чтобы не падать на внешнем ключе; если зон нет вообще - ErrNoAreasDefined
// 4. Вставка сверх общего потолка количества мест отклоняется
// 5. Создается ровно одна строка места
//
// Вызывается внутри транзакции создания бронирования: вставка места
// откатывается вместе с ней при любом последующем сбое
func (r *Resolver) Resolve(ctx context.Context, slot string) (*domain.Space, error) {
	existing, err := r.spaceRepo.GetByNumber(ctx, slot)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, spaceRepo.ErrSpaceNotFound) {
		r.logger.Error("Resolve: failed to look up space number=%s: %v", slot, err)
		return nil, fmt.Errorf("%w: Resolve - space lookup: %v", ErrInternal, err)
	}

	number, err := strconv.Atoi(slot)
	if err != nil || number < domain.MinSlotNumber || number > domain.MaxSlotNumber {
		r.logger.Warn("Resolve: slot identifier %q is outside the addressable range", slot)
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlotNumber, slot)
	}

	areaName, ok := config.AreaForSlot(r.bands, number)
	if !ok {
		// Таблица валидируется на полноту при старте, сюда попадать не должны
		return nil, fmt.Errorf("%w: no band covers slot %d", ErrInternal, number)
	}

	area, err := r.resolveArea(ctx, areaName)
	if err != nil {
		return nil, err
	}

	// Потолок общий для авто-создания и массового создания: место сверх
	// лимита не создается ни одним из путей. Чтение количества выполняется
	// под той же сериализуемой транзакцией, что и вставка
	total, err := r.spaceRepo.Count(ctx)
	if err != nil {
		r.logger.Error("Resolve: failed to count spaces: %v", err)
		return nil, fmt.Errorf("%w: Resolve - count spaces: %v", ErrInternal, err)
	}
	if total+1 > r.totalCapacity {
		r.logger.Warn("Resolve: capacity exceeded, total=%d, ceiling=%d", total, r.totalCapacity)
		return nil, fmt.Errorf("%w: %d existing + 1 > %d", ErrCapacityExceeded, total, r.totalCapacity)
	}

	space := &domain.Space{
		Number: slot,
		AreaID: area.ID,
		QRCode: uuid.NewString(),
		Status: domain.SpaceAvailable,
	}

	created, err := r.spaceRepo.Create(ctx, space)
	if err != nil {
		// Гонка за номер: место успели создать параллельно, переиспользуем его
		if errors.Is(err, spaceRepo.ErrDuplicateNumber) {
			r.logger.Warn("Resolve: lost creation race for space number=%s, reusing existing row", slot)
			return r.spaceRepo.GetByNumber(ctx, slot)
		}
		r.logger.Error("Resolve: failed to create space number=%s: %v", slot, err)
		return nil, fmt.Errorf("%w: Resolve - create space: %v", ErrInternal, err)
	}

	r.logger.Info("Resolve: auto-created space number=%s in area=%s (id=%d)", slot, area.Name, area.ID)
	return created, nil
}

// resolveArea находит зону по имени с fallback на произвольную существующую
func (r *Resolver) resolveArea(ctx context.Context, name string) (*domain.Area, error) {
	area, err := r.areaRepo.GetByName(ctx, name)
	if err == nil {
		return area, nil
	}
	if !errors.Is(err, areaRepo.ErrAreaNotFound) {
		r.logger.Error("resolveArea: failed to look up area name=%s: %v", name, err)
		return nil, fmt.Errorf("%w: resolveArea - area lookup: %v", ErrInternal, err)
	}

	r.logger.Warn("resolveArea: area %q from band table is missing, falling back to any existing area", name)

	fallback, err := r.areaRepo.GetAny(ctx)
	if err != nil {
		if errors.Is(err, areaRepo.ErrNoAreas) {
			return nil, ErrNoAreasDefined
		}
		r.logger.Error("resolveArea: failed to pick fallback area: %v", err)
		return nil, fmt.Errorf("%w: resolveArea - fallback lookup: %v", ErrInternal, err)
	}

	return fallback, nil
}
