package find_free_intervals

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс отсутствует в каталоге
	ErrResourceNotFound = errors.New("find_free_intervals: resource not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("find_free_intervals: invalid input data")

	// ErrInvalidRange возвращается, когда начало диапазона позже конца
	ErrInvalidRange = errors.New("find_free_intervals: invalid date range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_free_intervals: internal error")
)
