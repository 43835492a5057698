package booking

import "errors"

var (
	// ErrIntervalTaken возвращается, когда вставка нарушила exclusion constraint
	// по пересечению интервалов на одном месте
	ErrIntervalTaken = errors.New("booking.repository: interval already taken for this space")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
