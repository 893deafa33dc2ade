package domain

import "errors"

var (
	// ErrInvalidRange возвращается, когда начало диапазона позже конца
	ErrInvalidRange = errors.New("domain: range start is after range end")

	// ErrIntegrityViolation возвращается, когда сумма резерваций на какой-то день
	// превышает объявленную ёмкость. Такого состояния быть не должно - инвариант
	// защищается при записи, поэтому ошибка сигнализирует о повреждении данных
	// и никогда не гасится молча
	ErrIntegrityViolation = errors.New("domain: reserved capacity exceeds declared total")
)
