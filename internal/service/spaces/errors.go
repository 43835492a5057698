package spaces

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда место не найдено
	ErrSpaceNotFound = errors.New("spaces: space not found")

	// ErrAreaNotFound возвращается, когда зона не найдена
	ErrAreaNotFound = errors.New("spaces: area not found")

	// ErrHasActiveBookings возвращается при попытке удалить место или зону,
	// у которых есть незакончившиеся бронирования
	ErrHasActiveBookings = errors.New("spaces: active bookings exist")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("spaces: internal error")
)
