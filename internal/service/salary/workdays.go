package salary

import "time"

const dateKeyLayout = "2006-01-02"

// DateKey normalizes a timestamp to its calendar-date key. All holiday and
// attendance set lookups go through this so time-of-day never leaks into
// day counting.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// CountWorkingDays counts the dates in [from, to] inclusive that are
// neither a Saturday/Sunday nor present in the holiday set. Returns 0 when
// to is before from. Holiday keys are DateKey values; any holiday counts
// regardless of its type.
func CountWorkingDays(from, to time.Time, holidays map[string]struct{}) int {
	from = truncateToDay(from)
	to = truncateToDay(to)

	count := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		if _, isHoliday := holidays[DateKey(d)]; isHoliday {
			continue
		}
		count++
	}
	return count
}

// MonthPeriod returns the first and last calendar day of the month, both at
// midnight UTC. Day zero of the following month resolves to the month's
// last day, so leap Februaries come out right.
func MonthPeriod(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

// clipToPeriod clamps a leave interval to the calculation period.
func clipToPeriod(from, to, periodStart, periodEnd time.Time) (time.Time, time.Time) {
	if from.Before(periodStart) {
		from = periodStart
	}
	if to.After(periodEnd) {
		to = periodEnd
	}
	return from, to
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
