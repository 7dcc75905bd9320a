package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// IsWeekend reports whether d falls on a Saturday or Sunday.
func IsWeekend(d Date) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// NextWorkingDay returns d unchanged when it is a working day.
// A Sunday advances by one day and a Saturday by two, both landing on Monday.
func NextWorkingDay(d Date) Date {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDays(2)
	case time.Sunday:
		return d.AddDays(1)
	default:
		return d
	}
}

// DayAfter returns the calendar day following d.
func DayAfter(d Date) Date {
	return d.AddDays(1)
}

// AddWorkingDays returns the date reached after occupying duration working
// days, counting start itself as the first. Weekends are skipped; start is
// expected to be a working day already.
func AddWorkingDays(start Date, duration int) (Date, error) {
	if duration < 1 {
		return Date{}, zerr.With(ErrInvalidDuration, "duration", duration)
	}
	d := start
	for i := 1; i < duration; i++ {
		d = NextWorkingDay(DayAfter(d))
	}
	return d, nil
}

// CalendarSpan returns the inclusive day count from start to end, never
// less than 1.
func CalendarSpan(start, end Date) int {
	span := start.DaysUntil(end) + 1
	if span < 1 {
		return 1
	}
	return span
}
