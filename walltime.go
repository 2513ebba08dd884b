package spdlog

import "time"

// walltime is the calendar breakdown of a record timestamp, computed once per
// format call and shared read-only by every directive in the chain.
type walltime struct {
	t       time.Time // zoned per the formatter's local/UTC mode
	year    int
	month   time.Month
	day     int
	hour    int
	minute  int
	second  int
	weekday time.Weekday
}

func breakdown(t time.Time, utc bool) walltime {
	if utc {
		t = t.UTC()
	} else {
		t = t.Local()
	}
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return walltime{
		t:       t,
		year:    year,
		month:   month,
		day:     day,
		hour:    hour,
		minute:  minute,
		second:  second,
		weekday: t.Weekday(),
	}
}
