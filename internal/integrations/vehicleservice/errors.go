package vehicleservice

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда транспорт не найден или
	// не принадлежит указанному пользователю. Сервис отвечает одинаково
	// в обоих случаях, чтобы не раскрывать существование чужого транспорта
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("vehicleservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("vehicleservice client: invalid response")
)
