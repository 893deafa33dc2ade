package domain

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityPeriod объявленное окно доступности ресурса:
// в каждый день диапазона [StartDate, EndDate] ресурс предлагает
// не более TotalCapacity единиц ёмкости
type AvailabilityPeriod struct {
	ID            int64
	ResourceID    uuid.UUID
	StartDate     time.Time // включительно
	EndDate       time.Time // включительно
	TotalCapacity float64

	CreatedAt time.Time
}

// Covers возвращает true, если дата лежит внутри окна
func (p *AvailabilityPeriod) Covers(date time.Time) bool {
	return DateInRange(date, p.StartDate, p.EndDate)
}

// Overlaps возвращает true, если окно пересекается с диапазоном [start, end]
func (p *AvailabilityPeriod) Overlaps(start, end time.Time) bool {
	return RangesOverlap(p.StartDate, p.EndDate, start, end)
}

// Clip возвращает пересечение окна с диапазоном [start, end]
// ok=false, если пересечение пусто
func (p *AvailabilityPeriod) Clip(start, end time.Time) (time.Time, time.Time, bool) {
	s := NormalizeDate(start)
	e := NormalizeDate(end)

	if s.Before(p.StartDate) {
		s = p.StartDate
	}
	if e.After(p.EndDate) {
		e = p.EndDate
	}
	if s.After(e) {
		return time.Time{}, time.Time{}, false
	}
	return s, e, true
}
