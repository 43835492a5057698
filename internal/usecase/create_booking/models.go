package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64            // ID пользователя из сессии
	VehicleID int64            // ID транспортного средства
	Slot      string           // Внешний идентификатор слота (например, "12")
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Локальное время начала ("09:00")
	EndTime   types.TimeString // Локальное время конца ("11:00")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64     // ID созданного бронирования
	VehicleID   int64     // ID транспорта
	SpaceID     int64     // ID места
	SpaceNumber string    // Номер места
	StartTime   time.Time // Начало интервала (нормализованное)
	EndTime     time.Time // Конец интервала (нормализованное)
	Status      string    // Статус бронирования ("pending")
	QRCodeURL   string    // Ссылка-подтверждение

	CreatedAt time.Time // Время создания
}
