package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
)

// Report отчёт о доступности ресурса на период
// Чистая композиция данных учётной книги и планировщика:
// пересчитывается на каждый запрос и нигде не кэшируется
type Report struct {
	ResourceID      uuid.UUID        `json:"resourceId"`
	StartDate       string           `json:"startDate"` // "2026-09-01"
	EndDate         string           `json:"endDate"`
	Status          string           `json:"status"` // AVAILABLE | PARTIAL | UNAVAILABLE | NO_DATA
	FreePeriods     []FreePeriod     `json:"freePeriods"`
	ReservedPeriods []ReservedPeriod `json:"reservedPeriods"`
}

// FreePeriod свободный интервал в отчёте
type FreePeriod struct {
	StartDate            string  `json:"startDate"`
	EndDate              string  `json:"endDate"`
	MinAvailableCapacity float64 `json:"minAvailableCapacity"`
	IsFullyAvailable     bool    `json:"isFullyAvailable"`
}

// ReservedPeriod занятый интервал в отчёте
// RenterName берется из rental-workflow сервиса и может отсутствовать,
// если тот недоступен (graceful degradation)
type ReservedPeriod struct {
	StartDate        string    `json:"startDate"`
	EndDate          string    `json:"endDate"`
	ReservedCapacity float64   `json:"reservedCapacity"`
	OwnerRef         uuid.UUID `json:"ownerRef"`
	RenterName       *string   `json:"renterName,omitempty"`
}

// FromFreeInterval конвертирует domain модель в DTO отчёта
func FromFreeInterval(fi domain.FreeInterval) FreePeriod {
	return FreePeriod{
		StartDate:            fi.StartDate.Format(domain.DateFormat),
		EndDate:              fi.EndDate.Format(domain.DateFormat),
		MinAvailableCapacity: fi.MinAvailableCapacity,
		IsFullyAvailable:     fi.IsFullyAvailable,
	}
}

// FromReservation конвертирует domain модель в DTO отчёта
// Диапазон резервации обрезается по запрошенному периоду отчёта
func FromReservation(r *domain.Reservation, reportStart, reportEnd time.Time, renterName *string) ReservedPeriod {
	start := r.StartDate
	if start.Before(reportStart) {
		start = reportStart
	}
	end := r.EndDate
	if end.After(reportEnd) {
		end = reportEnd
	}

	return ReservedPeriod{
		StartDate:        start.Format(domain.DateFormat),
		EndDate:          end.Format(domain.DateFormat),
		ReservedCapacity: r.ReservedCapacity,
		OwnerRef:         r.OwnerRef,
		RenterName:       renterName,
	}
}
