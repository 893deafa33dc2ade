package periods

import "errors"

var (
	// ErrInvalidRange возвращается, когда начало окна позже конца
	ErrInvalidRange = errors.New("periods: range start is after range end")

	// ErrInvalidCapacity возвращается при отрицательной объявляемой ёмкости
	ErrInvalidCapacity = errors.New("periods: total capacity must not be negative")

	// ErrPeriodOverlap возвращается, когда новое окно пересекается
	// с уже объявленным окном того же ресурса
	ErrPeriodOverlap = errors.New("periods: overlaps an existing availability period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("periods: internal error")
)
