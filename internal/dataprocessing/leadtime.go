package dataprocessing

import "time"

// CountWeekdays returns the number of weekdays (Monday through Friday) in
// the half-open interval [start's date, end's date): start's calendar day
// counts if it is a weekday, end's calendar day never does. Time-of-day is
// dropped before counting. When end precedes start the count is negative,
// mirroring the symmetric interval.
func CountWeekdays(start, end time.Time) int {
	s := truncateToDay(start)
	e := truncateToDay(end)
	if e.Before(s) {
		return -CountWeekdays(end, start)
	}

	days := int(e.Sub(s) / (24 * time.Hour))
	fullWeeks := days / 7
	count := fullWeeks * 5

	for d := s.AddDate(0, 0, fullWeeks*7); d.Before(e); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

// LeadTimes computes the per-row business-day lead time for paired start and
// end series of equal length and aligned row order. A missing start or end
// yields a missing result for that row, never an error.
func LeadTimes(starts, ends []*time.Time) []*int {
	result := make([]*int, len(starts))
	for i := range starts {
		result[i] = leadTime(starts[i], ends[i])
	}
	return result
}

func leadTime(start, end *time.Time) *int {
	if start == nil || end == nil {
		return nil
	}
	n := CountWeekdays(*start, *end)
	return &n
}

// truncateToDay rebuilds the timestamp as a calendar date in UTC, which
// keeps the day arithmetic immune to zone offsets and DST transitions.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
