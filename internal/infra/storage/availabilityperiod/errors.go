package availabilityperiod

import "errors"

var (
	// ErrPeriodNotFound возвращается, когда окно доступности не найдено
	ErrPeriodNotFound = errors.New("availabilityperiod.repository: period not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availabilityperiod.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availabilityperiod.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availabilityperiod.repository: failed to scan row")
)
