package config

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrInvalidBands возвращается, когда таблица диапазонов слотов некорректна
	ErrInvalidBands = errors.New("config: invalid slot bands")
)

// Band один диапазон номеров слотов, закрепленный за зоной парковки
// Таблица диапазонов задается в config.toml и не зашита в код,
// чтобы её можно было перекроить без пересборки сервиса
type Band struct {
	Low  int    `toml:"low"`
	High int    `toml:"high"`
	Area string `toml:"area"`
}

// Contains проверяет, что номер слота попадает в диапазон
func (b Band) Contains(number int) bool {
	return number >= b.Low && number <= b.High
}

// ValidateBands проверяет таблицу диапазонов при старте сервиса:
// диапазоны упорядочены, не пересекаются, не содержат дыр и целиком
// покрывают адресуемое пространство номеров 1..100
func ValidateBands(bands []Band) error {
	if len(bands) == 0 {
		return fmt.Errorf("%w: at least one band is required", ErrInvalidBands)
	}

	expectedLow := domain.MinSlotNumber
	for i, b := range bands {
		if b.Area == "" {
			return fmt.Errorf("%w: band %d has empty area name", ErrInvalidBands, i)
		}
		if b.Low > b.High {
			return fmt.Errorf("%w: band %d is inverted (%d > %d)", ErrInvalidBands, i, b.Low, b.High)
		}
		if b.Low != expectedLow {
			if b.Low > expectedLow {
				return fmt.Errorf("%w: gap before band %d (numbers %d..%d uncovered)",
					ErrInvalidBands, i, expectedLow, b.Low-1)
			}
			return fmt.Errorf("%w: band %d overlaps previous band at %d", ErrInvalidBands, i, b.Low)
		}
		expectedLow = b.High + 1
	}

	if expectedLow != domain.MaxSlotNumber+1 {
		return fmt.Errorf("%w: bands end at %d, must cover up to %d",
			ErrInvalidBands, expectedLow-1, domain.MaxSlotNumber)
	}

	return nil
}

// AreaForSlot возвращает имя зоны для номера слота
// Для номеров вне адресуемого диапазона возвращает false
func AreaForSlot(bands []Band, number int) (string, bool) {
	for _, b := range bands {
		if b.Contains(number) {
			return b.Area, true
		}
	}
	return "", false
}
