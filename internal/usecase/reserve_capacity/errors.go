package reserve_capacity

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс отсутствует в каталоге
	ErrResourceNotFound = errors.New("reserve_capacity: resource not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reserve_capacity: invalid input data")

	// ErrInvalidRange возвращается, когда начало диапазона позже конца
	ErrInvalidRange = errors.New("reserve_capacity: invalid date range")

	// ErrNoAvailabilityDeclared возвращается, когда какой-то день диапазона
	// не покрыт ни одним окном доступности
	ErrNoAvailabilityDeclared = errors.New("reserve_capacity: no availability declared for requested range")

	// ErrInsufficientCapacity возвращается, когда свободной ёмкости не хватает
	ErrInsufficientCapacity = errors.New("reserve_capacity: insufficient capacity")

	// ErrReservationConflict возвращается, когда повторы при конкурентных
	// резервациях исчерпаны
	ErrReservationConflict = errors.New("reserve_capacity: reservation conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve_capacity: internal error")
)
