package spdlog

import (
	"strconv"
	"time"
)

// Fixed-width digit appenders for calendar fields. Each pads with zeros to
// its nominal width and never truncates: values wider than the field render
// in full. Negative input should not occur from a valid calendar breakdown;
// it falls back to a generic zero-padded signed form instead of misrendering.

func appendInt(b *Buffer, n int64) {
	b.buf = strconv.AppendInt(b.buf, n, 10)
}

func appendUint(b *Buffer, n uint64) {
	b.buf = strconv.AppendUint(b.buf, n, 10)
}

func pad2(b *Buffer, n int) {
	if n > 99 {
		appendInt(b, int64(n))
		return
	}
	if n > 9 { // 10-99
		b.buf = append(b.buf, byte('0'+n/10), byte('0'+n%10))
		return
	}
	if n >= 0 { // 0-9
		b.buf = append(b.buf, '0', byte('0'+n))
		return
	}
	appendZeroPaddedSigned(b, int64(n), 2)
}

func pad3(b *Buffer, n int) {
	if n > 999 {
		appendInt(b, int64(n))
		return
	}
	if n > 99 { // 100-999
		b.buf = append(b.buf, byte('0'+n/100))
		pad2(b, n%100)
		return
	}
	if n > 9 { // 10-99
		b.buf = append(b.buf, '0', byte('0'+n/10), byte('0'+n%10))
		return
	}
	if n >= 0 { // 0-9
		b.buf = append(b.buf, '0', '0', byte('0'+n))
		return
	}
	appendZeroPaddedSigned(b, int64(n), 3)
}

func pad6(b *Buffer, n int) {
	if n < 0 {
		appendZeroPaddedSigned(b, int64(n), 6)
		return
	}
	if n > 99999 {
		appendInt(b, int64(n))
		return
	}
	pad3(b, n/1000)
	pad3(b, n%1000)
}

func pad9(b *Buffer, n int) {
	if n < 0 {
		appendZeroPaddedSigned(b, int64(n), 9)
		return
	}
	if n > 999999999 {
		appendInt(b, int64(n))
		return
	}
	pad3(b, n/1000000)
	pad6(b, n%1000000)
}

// appendZeroPaddedSigned renders n zero-padded to at least width characters,
// with a leading '-' counting toward the width for negative values.
func appendZeroPaddedSigned(b *Buffer, n int64, width int) {
	u := uint64(n)
	if n < 0 {
		u = -u
		b.buf = append(b.buf, '-')
		width--
	}
	for zeros := width - digitCount(u); zeros > 0; zeros-- {
		b.buf = append(b.buf, '0')
	}
	appendUint(b, u)
}

func digitCount(u uint64) int {
	n := 1
	for u >= 10 {
		u /= 10
		n++
	}
	return n
}

// timeFraction returns the sub-second remainder of t in the given unit
// (time.Millisecond, time.Microsecond or time.Nanosecond): the full duration
// since the epoch cast to the unit, minus its whole-seconds component cast to
// the unit. Integer division truncates toward zero, so pre-epoch timestamps
// yield negative remainders.
func timeFraction(t time.Time, unit time.Duration) int64 {
	ns := t.UnixNano()
	perSecond := int64(time.Second / unit)
	return ns/int64(unit) - (ns/int64(time.Second))*perSecond
}
