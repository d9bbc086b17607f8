package kp

import (
	"time"
)

// After holds when the timestamp is strictly after t.
func After[R any](p Path[R, time.Time], t time.Time) Predicate[R] {
	return p.Is(func(f time.Time) bool { return f.After(t) })
}

// Before holds when the timestamp is strictly before t.
func Before[R any](p Path[R, time.Time], t time.Time) Predicate[R] {
	return p.Is(func(f time.Time) bool { return f.Before(t) })
}

// Within holds when from <= timestamp <= to.
func Within[R any](p Path[R, time.Time], from, to time.Time) Predicate[R] {
	return p.Is(func(f time.Time) bool { return !f.Before(from) && !f.After(to) })
}

// OnWeekday holds when the timestamp falls on one of days, in the
// timestamp's own location.
func OnWeekday[R any](p Path[R, time.Time], days ...time.Weekday) Predicate[R] {
	var mask uint8
	for _, d := range days {
		mask |= 1 << uint(d)
	}
	return p.Is(func(f time.Time) bool { return mask&(1<<uint(f.Weekday())) != 0 })
}

// Weekend holds on Saturdays and Sundays.
func Weekend[R any](p Path[R, time.Time]) Predicate[R] {
	return OnWeekday(p, time.Saturday, time.Sunday)
}

// BusinessHours holds on weekdays when startHour <= hour < endHour.
func BusinessHours[R any](p Path[R, time.Time], startHour, endHour int) Predicate[R] {
	return p.Is(func(f time.Time) bool {
		switch f.Weekday() {
		case time.Saturday, time.Sunday:
			return false
		}
		h := f.Hour()
		return startHour <= h && h < endHour
	})
}

// SameDay holds when the timestamp has the same calendar date as t, with the
// timestamp converted to t's location first.
func SameDay[R any](p Path[R, time.Time], t time.Time) Predicate[R] {
	y, m, d := t.Date()
	return p.Is(func(f time.Time) bool {
		fy, fm, fd := f.In(t.Location()).Date()
		return fy == y && fm == m && fd == d
	})
}
