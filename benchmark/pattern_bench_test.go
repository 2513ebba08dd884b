package benchmark_test

import (
	"testing"
	"time"

	"github.com/Montellese/spdlog"
)

var benchRecordTime = time.Date(2014, time.August, 23, 15, 35, 46, 123456789, time.UTC)

func benchRecord() spdlog.Record {
	return spdlog.Record{
		Name:     "bench",
		Level:    spdlog.InfoLevel,
		Message:  "cache miss for key user:1337, loading from origin",
		MsgID:    42,
		ThreadID: 7,
		Time:     benchRecordTime,
		Buf:      spdlog.NewBuffer(),
	}
}

// benchmarkFormatter measures the compiled chain alone: no logger, no write,
// the buffer reset and reused every iteration.
func benchmarkFormatter(b *testing.B, pattern string) {
	f := spdlog.NewPatternFormatterWithOptions(pattern, spdlog.PatternOptions{UTC: true, EOL: "\n"})
	r := benchRecord()
	f.Format(&r)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Buf.Reset()
		f.Format(&r)
	}
}

func BenchmarkFormatDefaultPattern(b *testing.B) {
	benchmarkFormatter(b, spdlog.DefaultPattern)
}

func BenchmarkFormatFullLine(b *testing.B) {
	benchmarkFormatter(b, "%+")
}

func BenchmarkFormatCalendarNames(b *testing.B) {
	benchmarkFormatter(b, "%A %B %d %r (%c)")
}

func BenchmarkFormatPaddedFields(b *testing.B) {
	benchmarkFormatter(b, "[%12n] [%10l] %8t %8P %v")
}

func BenchmarkFormatOffsetDirective(b *testing.B) {
	benchmarkFormatter(b, "%Y-%m-%dT%T.%F%z %v")
}

func BenchmarkCompilePattern(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		spdlog.NewPatternFormatterWithOptions(spdlog.DefaultPattern, spdlog.PatternOptions{UTC: true, EOL: "\n"})
	}
}
