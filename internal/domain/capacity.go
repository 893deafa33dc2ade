package domain

import (
	"fmt"
	"sort"
	"time"
)

// DayCapacity срез ёмкости ресурса на один день (вычисляется, не хранится)
type DayCapacity struct {
	Date              time.Time
	TotalCapacity     float64
	ReservedCapacity  float64
	AvailableCapacity float64
}

// FreeInterval максимальный поддиапазон, в каждый день которого свободно
// не меньше запрошенной ёмкости
type FreeInterval struct {
	StartDate            time.Time
	EndDate              time.Time
	MinAvailableCapacity float64
	IsFullyAvailable     bool
}

// PeriodCovering возвращает окно доступности, покрывающее дату, или nil
func PeriodCovering(date time.Time, periods []*AvailabilityPeriod) *AvailabilityPeriod {
	for _, p := range periods {
		if p.Covers(date) {
			return p
		}
	}
	return nil
}

// ReservedOn возвращает суммарную зарезервированную ёмкость на дату
func ReservedOn(date time.Time, reservations []*Reservation) float64 {
	var sum float64
	for _, r := range reservations {
		if r.Covers(date) {
			sum += r.ReservedCapacity
		}
	}
	return sum
}

// CapacityOn вычисляет срез ёмкости на дату
// Если дата не покрыта ни одним окном, все значения нулевые:
// необъявленная ёмкость означает, что отдавать нечего
func CapacityOn(date time.Time, periods []*AvailabilityPeriod, reservations []*Reservation) (*DayCapacity, error) {
	d := NormalizeDate(date)

	period := PeriodCovering(d, periods)
	if period == nil {
		return &DayCapacity{Date: d}, nil
	}

	reserved := ReservedOn(d, reservations)
	available := period.TotalCapacity - reserved
	if available < 0 {
		return nil, fmt.Errorf("%w: date=%s total=%.2f reserved=%.2f",
			ErrIntegrityViolation, d.Format(DateFormat), period.TotalCapacity, reserved)
	}

	return &DayCapacity{
		Date:              d,
		TotalCapacity:     period.TotalCapacity,
		ReservedCapacity:  reserved,
		AvailableCapacity: available,
	}, nil
}

// eventDates строит отсортированный набор дат-событий диапазона [start, end]:
// начало диапазона плюс все границы окон и резерваций (start и end+1),
// попадающие внутрь. Между соседними событиями набор активных резерваций
// и покрывающее окно неизменны, поэтому доступная ёмкость на каждом
// сегменте вычисляется один раз, а не по дням
func eventDates(start, end time.Time, periods []*AvailabilityPeriod, reservations []*Reservation) []time.Time {
	set := map[time.Time]struct{}{start: {}}

	add := func(d time.Time) {
		if d.After(start) && !d.After(end) {
			set[d] = struct{}{}
		}
	}

	for _, p := range periods {
		add(p.StartDate)
		add(NextDay(p.EndDate))
	}
	for _, r := range reservations {
		add(r.StartDate)
		add(NextDay(r.EndDate))
	}

	events := make([]time.Time, 0, len(set))
	for d := range set {
		events = append(events, d)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Before(events[j]) })

	return events
}

// RangeCapacity вычисляет минимальную доступную ёмкость на диапазоне [start, end]
// событийной разверткой (только границы, без перебора календарных дней).
// covered=false означает, что какой-то день диапазона не покрыт ни одним окном
// (доступная ёмкость такого дня считается нулевой)
func RangeCapacity(start, end time.Time, periods []*AvailabilityPeriod, reservations []*Reservation) (minAvailable float64, covered bool, err error) {
	s := NormalizeDate(start)
	e := NormalizeDate(end)
	if s.After(e) {
		return 0, false, ErrInvalidRange
	}

	covered = true
	first := true

	events := eventDates(s, e, periods, reservations)
	for _, segStart := range events {
		var available float64

		period := PeriodCovering(segStart, periods)
		if period == nil {
			covered = false
		} else {
			reserved := ReservedOn(segStart, reservations)
			available = period.TotalCapacity - reserved
			if available < 0 {
				return 0, covered, fmt.Errorf("%w: date=%s total=%.2f reserved=%.2f",
					ErrIntegrityViolation, segStart.Format(DateFormat), period.TotalCapacity, reserved)
			}
		}

		if first || available < minAvailable {
			minAvailable = available
			first = false
		}
	}

	return minAvailable, covered, nil
}

// SweepFreeIntervals вычисляет свободные интервалы внутри одного окна доступности.
// Диапазон запроса сначала обрезается по окну, затем развертка по датам-событиям
// выделяет сегменты с постоянной доступной ёмкостью и отдает те, где её хватает.
// Соседние сегменты не склеиваются, даже если их ёмкость совпадает:
// каждый ограниченный событиями сегмент отдается отдельным интервалом
func SweepFreeIntervals(period *AvailabilityPeriod, start, end time.Time, reservations []*Reservation, required float64) ([]FreeInterval, error) {
	if !ValidRange(start, end) {
		return nil, ErrInvalidRange
	}

	clipStart, clipEnd, ok := period.Clip(start, end)
	if !ok {
		return nil, nil
	}

	intervals := make([]FreeInterval, 0)

	events := eventDates(clipStart, clipEnd, nil, reservations)
	for i, segStart := range events {
		segEnd := clipEnd
		if i+1 < len(events) {
			segEnd = PrevDay(events[i+1])
		}

		reserved := ReservedOn(segStart, reservations)
		available := period.TotalCapacity - reserved
		if available < 0 {
			return nil, fmt.Errorf("%w: date=%s total=%.2f reserved=%.2f",
				ErrIntegrityViolation, segStart.Format(DateFormat), period.TotalCapacity, reserved)
		}

		if available >= required {
			intervals = append(intervals, FreeInterval{
				StartDate:            segStart,
				EndDate:              segEnd,
				MinAvailableCapacity: available,
				IsFullyAvailable:     available == period.TotalCapacity,
			})
		}
	}

	return intervals, nil
}
