package domain

import "time"

// Все даты в движке имеют дневную гранулярность и хранятся
// как UTC-полночь. Диапазоны [start, end] включают обе границы.

// NormalizeDate обнуляет время, оставляя только дату (UTC)
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NextDay возвращает следующий день
func NextDay(d time.Time) time.Time {
	return d.AddDate(0, 0, 1)
}

// PrevDay возвращает предыдущий день
func PrevDay(d time.Time) time.Time {
	return d.AddDate(0, 0, -1)
}

// SameDay проверяет, что две даты относятся к одному и тому же дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// ValidRange проверяет, что начало диапазона не позже конца
func ValidRange(start, end time.Time) bool {
	return !NormalizeDate(start).After(NormalizeDate(end))
}

// DateInRange проверяет, что дата лежит в диапазоне [start, end]
func DateInRange(date, start, end time.Time) bool {
	d := NormalizeDate(date)
	return !d.Before(NormalizeDate(start)) && !d.After(NormalizeDate(end))
}

// RangesOverlap проверяет пересечение двух включающих диапазонов дат
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !NormalizeDate(aStart).After(NormalizeDate(bEnd)) &&
		!NormalizeDate(aEnd).Before(NormalizeDate(bStart))
}

// DaysIn возвращает количество дней во включающем диапазоне [start, end]
func DaysIn(start, end time.Time) int {
	s := NormalizeDate(start)
	e := NormalizeDate(end)
	if s.After(e) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}
