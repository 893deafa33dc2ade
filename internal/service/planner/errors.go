package planner

import "errors"

var (
	// ErrInvalidRange возвращается, когда начало диапазона позже конца
	ErrInvalidRange = errors.New("planner: range start is after range end")

	// ErrInvalidRequest возвращается при неположительной требуемой ёмкости
	ErrInvalidRequest = errors.New("planner: required capacity must be positive")

	// ErrIntegrityViolation возвращается, когда на чтении обнаружено
	// нарушение инварианта ёмкости
	ErrIntegrityViolation = errors.New("planner: capacity invariant violated")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("planner: internal error")
)
