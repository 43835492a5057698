package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrVehicleNotFound возвращается, когда транспорт не существует или
	// не принадлежит пользователю. Случаи не различаются намеренно
	ErrVehicleNotFound = errors.New("create_booking: vehicle not found")

	// ErrVehicleNotApproved возвращается, когда транспорт не прошел модерацию
	ErrVehicleNotApproved = errors.New("create_booking: vehicle is not approved")

	// ErrInvalidSlot возвращается, когда идентификатор слота вне адресуемого диапазона
	ErrInvalidSlot = errors.New("create_booking: invalid slot identifier")

	// ErrNoAreasDefined возвращается, когда для нового места нет ни одной зоны
	ErrNoAreasDefined = errors.New("create_booking: no areas defined")

	// ErrCapacityExceeded возвращается, когда авто-создание места для нового
	// слота превысило бы общий потолок количества мест
	ErrCapacityExceeded = errors.New("create_booking: space capacity exceeded")

	// ErrPastStartTime возвращается, когда начало бронирования уже в прошлом
	ErrPastStartTime = errors.New("create_booking: start time is in the past")

	// ErrTimeConflict возвращается, когда интервал пересекается с существующим
	// бронированием этого места
	ErrTimeConflict = errors.New("create_booking: time conflict with existing booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
