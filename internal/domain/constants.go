package domain

// Capacity limits for the single parking facility
const (
	// TotalSpaceCapacity глобальный потолок количества мест на всю парковку
	TotalSpaceCapacity = 100

	// BulkProvisionLimit максимальный размер диапазона в одном запросе
	// массового создания мест
	BulkProvisionLimit = 100

	// MinSlotNumber / MaxSlotNumber адресуемый диапазон номеров слотов
	MinSlotNumber = 1
	MaxSlotNumber = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveBookingStatuses статусы бронирований, занимающих место
// Используются при проверке конфликтов и защите удаления
var ActiveBookingStatuses = []BookingStatus{
	StatusPending,
	StatusActive,
}
