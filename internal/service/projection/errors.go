package projection

import "errors"

var (
	// ErrInvalidRange возвращается, когда начало диапазона позже конца
	ErrInvalidRange = errors.New("projection: range start is after range end")

	// ErrIntegrityViolation возвращается, когда сумма резерваций превышает
	// объявленную ёмкость окна
	ErrIntegrityViolation = errors.New("projection: capacity invariant violated")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("projection: internal error")
)
