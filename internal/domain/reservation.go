package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reservation подтвержденное потребление ёмкости: ReservedCapacity единиц
// в каждый день диапазона [StartDate, EndDate]
// OwnerRef - непрозрачный идентификатор аренды во внешнем rental-workflow сервисе
type Reservation struct {
	ID               int64
	ResourceID       uuid.UUID
	OwnerRef         uuid.UUID
	StartDate        time.Time // включительно
	EndDate          time.Time // включительно
	ReservedCapacity float64

	CreatedAt time.Time
}

// Covers возвращает true, если резервация потребляет ёмкость в указанную дату
func (r *Reservation) Covers(date time.Time) bool {
	return DateInRange(date, r.StartDate, r.EndDate)
}

// Overlaps возвращает true, если резервация пересекается с диапазоном [start, end]
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return RangesOverlap(r.StartDate, r.EndDate, start, end)
}
