package spdlog_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Montellese/spdlog"
)

var patternSeeds = []string{
	"",
	"%",
	"%%",
	"plain text",
	spdlog.DefaultPattern,
	"%+",
	"%3Q",
	"%12",
	"%a %A %b %B %c %C %Y %D %m %d %H %I %M %S %e %f %F %p %r %R %T %z %t %P %n %l %L %v %i %x %X %h %+ %^ %8n %4!v",
	"100%% sure%",
	"%999999999999999999999n",
}

func renderSeed(pattern string) string {
	f := spdlog.NewPatternFormatterWithOptions(pattern, spdlog.PatternOptions{UTC: true, EOL: "\n"})
	r := spdlog.Record{
		Name:     "fuzz",
		Level:    spdlog.InfoLevel,
		Message:  "message body",
		MsgID:    7,
		ThreadID: 11,
		Time:     time.Date(2014, time.August, 23, 15, 35, 46, 123456789, time.UTC),
		Buf:      spdlog.NewBuffer(),
	}
	f.Format(&r)
	return r.Buf.String()
}

func FuzzCompilePattern(f *testing.F) {
	for _, seed := range patternSeeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, pattern string) {
		if len(pattern) > 1024 {
			t.Skip("pattern too large for fuzz budget")
		}

		first := renderSeed(pattern)
		if !strings.HasSuffix(first, "\n") {
			t.Fatalf("missing line terminator for pattern %q: %q", pattern, first)
		}

		// Compiling is deterministic and the directive chain carries no
		// per-call state, so a second render must match byte for byte.
		second := renderSeed(pattern)
		if first != second {
			t.Fatalf("unstable output for pattern %q:\nfirst  %q\nsecond %q", pattern, first, second)
		}

		formatter := spdlog.NewPatternFormatterWithOptions(pattern, spdlog.PatternOptions{UTC: true, EOL: "\n"})
		r := spdlog.Record{
			Name:     "fuzz",
			Level:    spdlog.InfoLevel,
			Message:  "message body",
			MsgID:    7,
			ThreadID: 11,
			Time:     time.Date(2014, time.August, 23, 15, 35, 46, 123456789, time.UTC),
			Buf:      spdlog.NewBuffer(),
		}
		formatter.Format(&r)
		formatter.Format(&r)
		doubled := r.Buf.String()
		if doubled != first+first {
			t.Fatalf("formatter mutated state across calls for pattern %q:\nsingle %q\ndouble %q", pattern, first, doubled)
		}

		if !strings.ContainsRune(pattern, '%') {
			if want := pattern + "\n"; first != want {
				t.Fatalf("literal passthrough mismatch: got %q want %q", first, want)
			}
		}
	})
}
