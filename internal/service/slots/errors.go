package slots

import "errors"

var (
	// ErrInvalidSlotNumber возвращается, когда идентификатор слота не является
	// числом из адресуемого диапазона
	ErrInvalidSlotNumber = errors.New("slots: invalid slot number")

	// ErrNoAreasDefined возвращается, когда в системе нет ни одной зоны
	// и создать место не к чему привязать
	ErrNoAreasDefined = errors.New("slots: no areas defined")

	// ErrCapacityExceeded возвращается, когда создание места превысило бы
	// общий потолок количества мест
	ErrCapacityExceeded = errors.New("slots: space capacity exceeded")

	// ErrInternal возвращается при внутренних ошибках резолвера
	ErrInternal = errors.New("slots: internal error")
)
