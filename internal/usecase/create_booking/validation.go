package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Все обязательные поля проверяются до любого обращения к хранилищу
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID is required", ErrInvalidInput)
	}

	if req.Slot == "" {
		return fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// buildRange собирает интервал бронирования из даты и локальных времен
// Ночевка (конец не позже начала) нормализуется на следующий день
// внутри domain.NewTimeRange - до проверки конфликтов и до сохранения
func buildRange(req *Request, loc *time.Location) (domain.TimeRange, error) {
	start, err := req.StartTime.OnDate(req.Date, loc)
	if err != nil {
		return domain.TimeRange{}, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	end, err := req.EndTime.OnDate(req.Date, loc)
	if err != nil {
		return domain.TimeRange{}, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	return domain.NewTimeRange(start, end), nil
}

// hasConflict проверяет пересечение кандидата с активными бронированиями места
// Чистое чтение: решение принимает вызывающий код
func hasConflict(bookings []*domain.Booking, candidate domain.TimeRange) bool {
	for _, b := range bookings {
		if b.ConflictsWith(candidate) {
			return true
		}
	}
	return false
}
