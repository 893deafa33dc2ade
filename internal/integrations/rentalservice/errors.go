package rentalservice

import "errors"

var (
	// ErrRentalNotFound возвращается, когда аренда не найдена
	ErrRentalNotFound = errors.New("rental not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("rentalservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("rentalservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что RentalService недоступен и отчёт строится без имён арендаторов
	ErrServiceDegraded = errors.New("rentalservice unavailable: graceful degradation applied")
)
