package domain

// AvailabilityStatus итоговая классификация доступности ресурса на период
type AvailabilityStatus string

const (
	// StatusAvailable хотя бы один свободный интервал полностью свободен
	StatusAvailable AvailabilityStatus = "AVAILABLE"
	// StatusPartial свободные интервалы есть, но везде есть частичная занятость
	StatusPartial AvailabilityStatus = "PARTIAL"
	// StatusUnavailable свободных интервалов нет даже при минимальном требовании
	StatusUnavailable AvailabilityStatus = "UNAVAILABLE"
	// StatusNoData на запрошенный период не объявлено ни одного окна доступности
	StatusNoData AvailabilityStatus = "NO_DATA"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MinProjectionCapacity минимальное требование ёмкости, с которым
// строится отчёт о доступности (1 единица)
const MinProjectionCapacity = 1.0
