package check_availability

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Request модель запроса проверки доступности места
type Request struct {
	SpaceNumber string           // Номер места
	Date        time.Time        // Дата (без времени)
	StartTime   types.TimeString // Локальное время начала
	EndTime     types.TimeString // Локальное время конца
}

// Response результат проверки доступности
type Response struct {
	SpaceNumber string    // Номер места
	StartTime   time.Time // Начало интервала (нормализованное)
	EndTime     time.Time // Конец интервала (нормализованное)
	Available   bool      // Свободен ли интервал
}
