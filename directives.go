package spdlog

import (
	"time"
	"unicode/utf8"
)

// directive is one compiled pattern token. It appends its piece of the line
// for a record, given the calendar breakdown computed once per format call.
// Every directive is a pure function of its inputs except the UTC offset
// directive, which consults the shared offset cache.
type directive func(buf *Buffer, r *Record, tm walltime)

// Weekday and month name tables, read-only after init. The month
// abbreviations are the catalog's own, not strftime's: June, July and Sept
// render with four or five letters.
var (
	weekdayNames     = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	weekdayFullNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	monthNames       = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "June", "July", "Aug", "Sept", "Oct", "Nov", "Dec"}
	monthFullNames   = [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}
)

// to12Hour keeps hour 0 as 0 rather than mapping it to 12. Midnight renders
// as "00" on a 12-hour clock; changing it would break output compatibility.
func to12Hour(hour int) int {
	if hour > 12 {
		return hour - 12
	}
	return hour
}

func amPM(hour int) string {
	if hour >= 12 {
		return "PM"
	}
	return "AM"
}

// padTextLeft appends text space-padded on the left to width characters.
// Width counts characters, not bytes. Text longer than width is appended
// unchanged, never truncated.
func padTextLeft(buf *Buffer, text string, width int) {
	if width > 0 {
		appendSpaces(buf, width-utf8.RuneCountInString(text))
	}
	buf.AppendString(text)
}

// padTextRight appends text space-padded on the right to width characters.
func padTextRight(buf *Buffer, text string, width int) {
	buf.AppendString(text)
	if width > 0 {
		appendSpaces(buf, width-utf8.RuneCountInString(text))
	}
}

// padUintRight appends n in decimal, space-padded on the right to width.
func padUintRight(buf *Buffer, n uint64, width int) {
	appendUint(buf, n)
	if width > 0 {
		appendSpaces(buf, width-digitCount(n))
	}
}

func appendSpaces(buf *Buffer, n int) {
	for ; n > 0; n-- {
		buf.AppendByte(' ')
	}
}

// literalDirective reproduces stored pattern text verbatim. It carries both
// plain literal runs and the spelled-out form of unknown selectors.
func literalDirective(text string) directive {
	return func(buf *Buffer, _ *Record, _ walltime) {
		buf.AppendString(text)
	}
}

// %n
func nameDirective(width int) directive {
	return func(buf *Buffer, r *Record, _ walltime) {
		padTextLeft(buf, r.Name, width)
	}
}

// %l
func levelDirective(width int) directive {
	return func(buf *Buffer, r *Record, _ walltime) {
		padTextLeft(buf, r.Level.String(), width)
	}
}

// %L
func shortLevelDirective(width int) directive {
	return func(buf *Buffer, r *Record, _ walltime) {
		padTextLeft(buf, r.Level.ShortString(), width)
	}
}

// %t
func threadDirective(width int) directive {
	return func(buf *Buffer, r *Record, _ walltime) {
		padUintRight(buf, r.ThreadID, width)
	}
}

// %P
func pidDirective(width int) directive {
	return func(buf *Buffer, _ *Record, _ walltime) {
		padUintRight(buf, processID, width)
	}
}

// %a, %A
func weekdayDirective(width int, full bool) directive {
	names := &weekdayNames
	if full {
		names = &weekdayFullNames
	}
	return func(buf *Buffer, _ *Record, tm walltime) {
		padTextRight(buf, names[tm.weekday], width)
	}
}

// %b, %h, %B
func monthDirective(width int, full bool) directive {
	names := &monthNames
	if full {
		names = &monthFullNames
	}
	return func(buf *Buffer, _ *Record, tm walltime) {
		padTextRight(buf, names[tm.month-1], width)
	}
}

// %v
func appendMessage(buf *Buffer, r *Record, _ walltime) {
	buf.AppendString(r.Message)
}

// %i
func appendSequenceID(buf *Buffer, r *Record, _ walltime) {
	buf.AppendByte('#')
	appendUint(buf, r.MsgID)
}

// %c renders like "Wed Aug 23 15:35:46 2014". The day of month is not
// zero padded.
func appendDateTime(buf *Buffer, _ *Record, tm walltime) {
	buf.AppendString(weekdayNames[tm.weekday])
	buf.AppendByte(' ')
	buf.AppendString(monthNames[tm.month-1])
	buf.AppendByte(' ')
	appendInt(buf, int64(tm.day))
	buf.AppendByte(' ')
	pad2(buf, tm.hour)
	buf.AppendByte(':')
	pad2(buf, tm.minute)
	buf.AppendByte(':')
	pad2(buf, tm.second)
	buf.AppendByte(' ')
	appendInt(buf, int64(tm.year))
}

// %C
func appendShortYear(buf *Buffer, _ *Record, tm walltime) {
	pad2(buf, tm.year%100)
}

// %Y
func appendYear(buf *Buffer, _ *Record, tm walltime) {
	appendInt(buf, int64(tm.year))
}

// %D, %x: MM/DD/YY
func appendShortDate(buf *Buffer, _ *Record, tm walltime) {
	pad2(buf, int(tm.month))
	buf.AppendByte('/')
	pad2(buf, tm.day)
	buf.AppendByte('/')
	pad2(buf, tm.year%100)
}

// %m
func appendMonthNumber(buf *Buffer, _ *Record, tm walltime) {
	pad2(buf, int(tm.month))
}

// %d
func appendDay(buf *Buffer, _ *Record, tm walltime) {
	pad2(buf, tm.day)
}

// %H
func appendHour24(buf *Buffer, _ *Record, tm walltime) {
	pad2(buf, tm.hour)
}

// %I
func appendHour12(buf *Buffer, _ *Record, tm walltime) {
	pad2(buf, to12Hour(tm.hour))
}

// %M
func appendMinute(buf *Buffer, _ *Record, tm walltime) {
	pad2(buf, tm.minute)
}

// %S
func appendSecond(buf *Buffer, _ *Record, tm walltime) {
	pad2(buf, tm.second)
}

// %e
func appendMillis(buf *Buffer, _ *Record, tm walltime) {
	pad3(buf, int(timeFraction(tm.t, time.Millisecond)))
}

// %f
func appendMicros(buf *Buffer, _ *Record, tm walltime) {
	pad6(buf, int(timeFraction(tm.t, time.Microsecond)))
}

// %F
func appendNanos(buf *Buffer, _ *Record, tm walltime) {
	pad9(buf, int(timeFraction(tm.t, time.Nanosecond)))
}

// %p
func appendAMPM(buf *Buffer, _ *Record, tm walltime) {
	buf.AppendString(amPM(tm.hour))
}

// %r: 12-hour clock, "03:55:02 PM"
func appendClock12(buf *Buffer, _ *Record, tm walltime) {
	pad2(buf, to12Hour(tm.hour))
	buf.AppendByte(':')
	pad2(buf, tm.minute)
	buf.AppendByte(':')
	pad2(buf, tm.second)
	buf.AppendByte(' ')
	buf.AppendString(amPM(tm.hour))
}

// %R: HH:MM
func appendClock24(buf *Buffer, _ *Record, tm walltime) {
	pad2(buf, tm.hour)
	buf.AppendByte(':')
	pad2(buf, tm.minute)
}

// %T, %X: HH:MM:SS
func appendISOTime(buf *Buffer, _ *Record, tm walltime) {
	pad2(buf, tm.hour)
	buf.AppendByte(':')
	pad2(buf, tm.minute)
	buf.AppendByte(':')
	pad2(buf, tm.second)
}

// %z renders the UTC offset of the breakdown time as ±HH:MM, going through
// the shared offset cache.
func appendUTCOffset(buf *Buffer, _ *Record, tm walltime) {
	minutes := utcOffsets.offsetMinutes(tm.t)
	sign := byte('+')
	if minutes < 0 {
		sign = '-'
		minutes = -minutes
	}
	buf.AppendByte(sign)
	pad2(buf, minutes/60)
	buf.AppendByte(':')
	pad2(buf, minutes%60)
}

// %+ renders the whole canonical line in one pass:
// [2014-08-23 15:35:46.123] [name] [level] message
// OmitDate and OmitName drop their bracketed segment including the trailing
// space.
func fullDirective(omitDate, omitName bool) directive {
	return func(buf *Buffer, r *Record, tm walltime) {
		if !omitDate {
			buf.AppendByte('[')
			appendInt(buf, int64(tm.year))
			buf.AppendByte('-')
			pad2(buf, int(tm.month))
			buf.AppendByte('-')
			pad2(buf, tm.day)
			buf.AppendByte(' ')
			pad2(buf, tm.hour)
			buf.AppendByte(':')
			pad2(buf, tm.minute)
			buf.AppendByte(':')
			pad2(buf, tm.second)
			buf.AppendByte('.')
			pad3(buf, int(timeFraction(tm.t, time.Millisecond)))
			buf.AppendString("] ")
		}
		if !omitName {
			buf.AppendByte('[')
			buf.AppendString(r.Name)
			buf.AppendString("] ")
		}
		buf.AppendByte('[')
		buf.AppendString(r.Level.String())
		buf.AppendString("] ")
		buf.AppendString(r.Message)
	}
}
