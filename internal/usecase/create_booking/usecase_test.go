package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/vehicleservice"
	"github.com/m04kA/SMC-ParkingService/internal/service/slots"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	active    []*domain.Booking
	createErr error
	created   []*domain.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *b
	created.ID = int64(len(r.created) + 1)
	created.CreatedAt = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	r.created = append(r.created, &created)
	return &created, nil
}

func (r *fakeBookingRepo) GetActiveBySpace(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return r.active, nil
}

type fakeResolver struct {
	space *domain.Space
	err   error
	calls int
}

func (r *fakeResolver) Resolve(_ context.Context, _ string) (*domain.Space, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.space, nil
}

type fakeVehicleClient struct {
	vehicle *vehicleservice.Vehicle
	err     error
}

func (c *fakeVehicleClient) GetOwnedVehicle(_ context.Context, _, _ int64) (*vehicleservice.Vehicle, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.vehicle, nil
}

func approvedVehicle() *vehicleservice.Vehicle {
	return &vehicleservice.Vehicle{ID: 10, OwnerID: 1, Status: vehicleservice.StatusApproved}
}

func validRequest() *Request {
	return &Request{
		UserID:    1,
		VehicleID: 10,
		Slot:      "42",
		Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("11:00"),
	}
}

func newTestUseCase(repo *fakeBookingRepo, resolver *fakeResolver, client *fakeVehicleClient, now time.Time) *UseCase {
	uc := NewUseCase(repo, resolver, client, fakeTxManager{}, "https://parking.example", noopLogger{})
	uc.timeProvider = fixedTime{now: now}
	uc.location = time.UTC
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	space := &domain.Space{ID: 5, Number: "42", AreaID: 3}

	t.Run("успешное создание бронирования", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		uc := newTestUseCase(repo, &fakeResolver{space: space}, &fakeVehicleClient{vehicle: approvedVehicle()}, now)

		resp, err := uc.Execute(ctx, validRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, int64(5), resp.SpaceID)
		assert.Equal(t, "42", resp.SpaceNumber)
		assert.Equal(t, string(domain.StatusPending), resp.Status)
		assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), resp.StartTime)
		assert.Equal(t, time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC), resp.EndTime)
		assert.Equal(t, "https://parking.example/bookings/confirm?slot=42", resp.QRCodeURL)
		require.Len(t, repo.created, 1)
	})

	t.Run("пересекающееся активное бронирование отклоняется", func(t *testing.T) {
		repo := &fakeBookingRepo{active: []*domain.Booking{{
			SpaceID:   5,
			StartTime: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
			Status:    domain.StatusActive,
		}}}
		uc := newTestUseCase(repo, &fakeResolver{space: space}, &fakeVehicleClient{vehicle: approvedVehicle()}, now)

		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrTimeConflict)
		assert.Empty(t, repo.created)
	})

	t.Run("стык впритык не считается конфликтом", func(t *testing.T) {
		repo := &fakeBookingRepo{active: []*domain.Booking{{
			SpaceID:   5,
			StartTime: time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC),
			Status:    domain.StatusActive,
		}}}
		uc := newTestUseCase(repo, &fakeResolver{space: space}, &fakeVehicleClient{vehicle: approvedVehicle()}, now)

		_, err := uc.Execute(ctx, validRequest())
		require.NoError(t, err)
	})

	t.Run("отмененное бронирование не мешает", func(t *testing.T) {
		repo := &fakeBookingRepo{active: []*domain.Booking{{
			SpaceID:   5,
			StartTime: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC),
			Status:    domain.StatusCancelled,
		}}}
		uc := newTestUseCase(repo, &fakeResolver{space: space}, &fakeVehicleClient{vehicle: approvedVehicle()}, now)

		_, err := uc.Execute(ctx, validRequest())
		require.NoError(t, err)
	})

	t.Run("начало в прошлом отклоняется, но слот уже отрезолвлен", func(t *testing.T) {
		resolver := &fakeResolver{space: space}
		lateNow := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
		uc := newTestUseCase(&fakeBookingRepo{}, resolver, &fakeVehicleClient{vehicle: approvedVehicle()}, lateNow)

		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrPastStartTime)
		// Резолвинг места идет до проверки прошлого времени
		assert.Equal(t, 1, resolver.calls)
	})

	t.Run("ночевка нормализуется на следующий день", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		uc := newTestUseCase(repo, &fakeResolver{space: space}, &fakeVehicleClient{vehicle: approvedVehicle()}, now)

		req := validRequest()
		req.StartTime = types.TimeString("22:00")
		req.EndTime = types.TimeString("06:00")

		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC), resp.StartTime)
		assert.Equal(t, time.Date(2026, 3, 11, 6, 0, 0, 0, time.UTC), resp.EndTime)
	})

	t.Run("транспорт не найден", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeResolver{space: space},
			&fakeVehicleClient{err: vehicleservice.ErrVehicleNotFound}, now)

		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrVehicleNotFound)
	})

	t.Run("транспорт не прошел модерацию", func(t *testing.T) {
		pending := &vehicleservice.Vehicle{ID: 10, OwnerID: 1, Status: vehicleservice.StatusPending}
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeResolver{space: space},
			&fakeVehicleClient{vehicle: pending}, now)

		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrVehicleNotApproved)
	})

	t.Run("некорректный слот", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeResolver{err: slots.ErrInvalidSlotNumber},
			&fakeVehicleClient{vehicle: approvedVehicle()}, now)

		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrInvalidSlot)
	})

	t.Run("потолок количества мест исчерпан", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeResolver{err: slots.ErrCapacityExceeded},
			&fakeVehicleClient{vehicle: approvedVehicle()}, now)

		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrCapacityExceeded)
	})

	t.Run("зоны не настроены", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeResolver{err: slots.ErrNoAreasDefined},
			&fakeVehicleClient{vehicle: approvedVehicle()}, now)

		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrNoAreasDefined)
	})

	t.Run("сработавший exclusion constraint превращается в конфликт", func(t *testing.T) {
		repo := &fakeBookingRepo{createErr: bookingRepo.ErrIntervalTaken}
		uc := newTestUseCase(repo, &fakeResolver{space: space}, &fakeVehicleClient{vehicle: approvedVehicle()}, now)

		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrTimeConflict)
	})

	t.Run("валидация обязательных полей", func(t *testing.T) {
		mutations := map[string]func(*Request){
			"нет userID":          func(r *Request) { r.UserID = 0 },
			"нет vehicleID":       func(r *Request) { r.VehicleID = 0 },
			"нет слота":           func(r *Request) { r.Slot = "" },
			"нет даты":            func(r *Request) { r.Date = time.Time{} },
			"нет времени начала":  func(r *Request) { r.StartTime = "" },
			"нет времени конца":   func(r *Request) { r.EndTime = "" },
			"мусор вместо начала": func(r *Request) { r.StartTime = "25:99" },
		}

		for name, mutate := range mutations {
			t.Run(name, func(t *testing.T) {
				uc := newTestUseCase(&fakeBookingRepo{}, &fakeResolver{space: space},
					&fakeVehicleClient{vehicle: approvedVehicle()}, now)

				req := validRequest()
				mutate(req)

				_, err := uc.Execute(ctx, req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}
