package provision_spaces

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("provision_spaces: invalid input data")

	// ErrAreaNotFound возвращается, когда зона не найдена
	ErrAreaNotFound = errors.New("provision_spaces: area not found")

	// ErrRangeTooLarge возвращается, когда размер диапазона превышает
	// лимит одного запроса
	ErrRangeTooLarge = errors.New("provision_spaces: range exceeds per-request limit")

	// ErrCapacityExceeded возвращается, когда создание диапазона превысило бы
	// глобальный потолок количества мест
	ErrCapacityExceeded = errors.New("provision_spaces: total space capacity exceeded")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("provision_spaces: internal error")
)
