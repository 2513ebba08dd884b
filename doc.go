// Package spdlog provides a pattern-based log-line rendering engine that
// favours one-time compilation and allocation-free appends. A pattern string
// compiles once into an ordered chain of directives; each log record walks
// the chain exactly once, appending into a pooled growable buffer.
//
// # Design overview
//
//   - Construction-time compilation: the pattern mini-language is parsed once
//     into a directive chain, so the per-record path runs without parsing,
//     mode checks or map lookups.
//   - Total compiler: every string is a valid pattern. Unknown selectors
//     render as their own spelling and a trailing % is dropped; compilation
//     never returns an error.
//   - One breakdown per record: the timestamp decomposes into calendar fields
//     once per format call (local or UTC), shared read-only by every
//     directive in the chain.
//   - Fixed-width appenders: calendar numbers render through dedicated two,
//     three, six and nine digit zero-padding helpers that never truncate an
//     oversized value.
//   - Shared offset cache: the %z directive reads the local UTC offset
//     through one mutex-guarded, time-windowed cell; everything else in the
//     render path is a pure function of its inputs.
//
// # Pattern language
//
// Ordinary characters copy through verbatim. % introduces a directive,
// optionally preceded by a field width for the width-aware directives:
//
//	%n      logger name               %l  level ("info")   %L level short ("I")
//	%t      thread id                 %P  process id       %v message text
//	%a %A   weekday (Sun / Sunday)    %b %h %B  month (Aug / August)
//	%c      full date and time        %C  2-digit year     %Y 4-digit year
//	%D %x   MM/DD/YY                  %m %d  month, day
//	%H %I   24h / 12h hour            %M %S  minute, second
//	%e %f %F  millis / micros / nanos %p  AM or PM
//	%r      hh:mm:ss AM/PM            %R  HH:MM            %T %X HH:MM:SS
//	%z      UTC offset (+02:00)       %i  message counter  %+ canonical line
//
// A width prefix such as %8n space-pads the field: text fields pad on the
// left, calendar names and ids on the right. Text longer than the width is
// never truncated.
//
// # Usage
//
//	logger := spdlog.New("worker", os.Stdout)
//	logger.Info("ready")
//	// [2026-08-21 15:04:05.123] [worker] [info] ready
//
// Custom layouts go through Options or a standalone formatter:
//
//	logger := spdlog.NewWithOptions("worker", os.Stdout, spdlog.Options{
//		Pattern: "%H:%M:%S.%e [%8n] %L %v",
//		UTC:     true,
//	})
//
//	f := spdlog.NewPatternFormatter("%Y-%m-%d %T %z %v")
//	r := spdlog.Record{Name: "worker", Level: spdlog.InfoLevel,
//		Message: "ready", Time: time.Now(), Buf: spdlog.NewBuffer()}
//	f.Format(&r)
//	os.Stdout.Write(r.Buf.Bytes())
//
// LoggerFromEnv builds a logger from LOG_* environment variables (PATTERN,
// UTC, EOL, NO_COLOR, FORCE_COLOR, PALETTE, OUTPUT).
//
// # Integration notes
//
//   - The ansi subpackage exposes the per-level color palettes
//     (ansi.PaletteByName, ansi.PaletteDefault).
//   - Colored output engages automatically when the destination is a
//     terminal; Options.NoColor and Options.ForceColor override detection.
//   - A compiled formatter is safe for concurrent use; each Format call must
//     own its Record and Buffer.
//
// Comparative benchmarks live under the benchmark/ directory; runnable
// demos under examples/.
package spdlog
