package ledger

import "errors"

var (
	// ErrInvalidRange возвращается, когда начало диапазона позже конца
	// Нарушение контракта вызывающей стороны
	ErrInvalidRange = errors.New("ledger: range start is after range end")

	// ErrInvalidRequest возвращается при неположительной запрошенной ёмкости
	ErrInvalidRequest = errors.New("ledger: capacity amount must be positive")

	// ErrNoAvailabilityDeclared возвращается, когда какой-то день диапазона
	// не покрыт ни одним окном доступности
	ErrNoAvailabilityDeclared = errors.New("ledger: no availability declared for some day in range")

	// ErrInsufficientCapacity возвращается, когда резервация превысила бы
	// объявленную ёмкость хотя бы в один день диапазона
	ErrInsufficientCapacity = errors.New("ledger: insufficient capacity for requested range")

	// ErrReservationConflict возвращается, когда повторы сериализуемой
	// транзакции исчерпаны из-за конкурентных резерваций
	ErrReservationConflict = errors.New("ledger: reservation conflict, retries exhausted")

	// ErrIntegrityViolation возвращается, когда на чтении обнаружено нарушение
	// инварианта ёмкости. Никогда не ожидается, всегда логируется и отдается наружу
	ErrIntegrityViolation = errors.New("ledger: capacity invariant violated")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("ledger: internal error")
)
