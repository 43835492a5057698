package space

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда место не найдено
	ErrSpaceNotFound = errors.New("space.repository: space not found")

	// ErrDuplicateNumber возвращается при попытке создать место с уже
	// занятым номером (номера мест глобально уникальны)
	ErrDuplicateNumber = errors.New("space.repository: space number already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("space.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("space.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("space.repository: failed to scan row")
)
