package spdlog

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/Montellese/spdlog/ansi"
)

// Options control how a Logger renders and writes lines.
type Options struct {
	// Pattern selects the line layout. Empty means DefaultPattern.
	Pattern string

	// UTC renders timestamps in UTC instead of local time.
	UTC bool

	// EOL overrides the platform line terminator ("\n" or "\r\n").
	EOL string

	// OmitDate drops the date-time segment from the %+ full line.
	OmitDate bool

	// OmitName drops the logger-name segment from the %+ full line.
	OmitName bool

	// NoColor forces color escape codes off regardless of terminal
	// detection.
	NoColor bool

	// ForceColor bypasses terminal detection and emits color even when the
	// destination is not a TTY. Useful for tests and forced-color logs.
	ForceColor bool

	// Palette overrides the ANSI palette for colored output. When nil,
	// ansi.PaletteDefault applies.
	Palette *ansi.Palette

	// Formatter replaces the pattern formatter entirely. When set, Pattern,
	// UTC, EOL, OmitDate and OmitName are ignored.
	Formatter Formatter
}

// Logger renders every message through its formatter and writes the line to
// one destination. There is no level filtering, routing or queuing: each
// call formats and writes synchronously. A Logger is safe for concurrent
// use; every call owns its record and a pooled buffer.
type Logger struct {
	name      string
	out       io.Writer
	formatter Formatter
	color     bool
	palette   *ansi.Palette
	seq       atomic.Uint64
}

// New returns a Logger writing canonical lines (DefaultPattern) to w.
func New(name string, w io.Writer) *Logger {
	return NewWithOptions(name, w, Options{})
}

// NewWithOptions builds a Logger with explicit settings.
func NewWithOptions(name string, w io.Writer, opts Options) *Logger {
	if w == nil {
		w = io.Discard
	}
	formatter := opts.Formatter
	if formatter == nil {
		pattern := opts.Pattern
		if pattern == "" {
			pattern = DefaultPattern
		}
		formatter = NewPatternFormatterWithOptions(pattern, PatternOptions{
			UTC:      opts.UTC,
			EOL:      opts.EOL,
			OmitDate: opts.OmitDate,
			OmitName: opts.OmitName,
		})
	}
	return &Logger{
		name:      name,
		out:       w,
		formatter: formatter,
		color:     !opts.NoColor && (opts.ForceColor || isTerminal(w)),
		palette:   resolvePalette(opts.Palette),
	}
}

// Name returns the logger's name as rendered by the %n directive.
func (l *Logger) Name() string { return l.name }

// Log renders msg at level and writes the line. Write errors are discarded;
// logging never fails the host program.
func (l *Logger) Log(level Level, msg string) {
	l.write(level, msg)
}

// Trace logs msg at TraceLevel.
func (l *Logger) Trace(msg string) { l.write(TraceLevel, msg) }

// Debug logs msg at DebugLevel.
func (l *Logger) Debug(msg string) { l.write(DebugLevel, msg) }

// Info logs msg at InfoLevel.
func (l *Logger) Info(msg string) { l.write(InfoLevel, msg) }

// Warn logs msg at WarnLevel.
func (l *Logger) Warn(msg string) { l.write(WarnLevel, msg) }

// Error logs msg at ErrorLevel.
func (l *Logger) Error(msg string) { l.write(ErrorLevel, msg) }

// Critical logs msg at CriticalLevel.
func (l *Logger) Critical(msg string) { l.write(CriticalLevel, msg) }

// Tracef logs a fmt.Sprintf-formatted message at TraceLevel.
func (l *Logger) Tracef(format string, args ...any) {
	l.write(TraceLevel, fmt.Sprintf(format, args...))
}

// Debugf logs a fmt.Sprintf-formatted message at DebugLevel.
func (l *Logger) Debugf(format string, args ...any) {
	l.write(DebugLevel, fmt.Sprintf(format, args...))
}

// Infof logs a fmt.Sprintf-formatted message at InfoLevel.
func (l *Logger) Infof(format string, args ...any) {
	l.write(InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf logs a fmt.Sprintf-formatted message at WarnLevel.
func (l *Logger) Warnf(format string, args ...any) {
	l.write(WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf logs a fmt.Sprintf-formatted message at ErrorLevel.
func (l *Logger) Errorf(format string, args ...any) {
	l.write(ErrorLevel, fmt.Sprintf(format, args...))
}

// Criticalf logs a fmt.Sprintf-formatted message at CriticalLevel.
func (l *Logger) Criticalf(format string, args ...any) {
	l.write(CriticalLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) write(level Level, msg string) {
	buf := acquireBuffer()
	r := Record{
		Name:     l.name,
		Level:    level,
		Message:  msg,
		MsgID:    l.seq.Add(1),
		ThreadID: threadID(),
		Time:     time.Now(),
		Buf:      buf,
	}
	if l.color {
		if c := levelColor(l.palette, level); c != "" {
			// One Write call carries color, line, terminator and reset so
			// concurrent loggers cannot interleave inside a line.
			buf.AppendString(c)
			l.formatter.Format(&r)
			buf.AppendString(ansi.Reset)
			_, _ = l.out.Write(buf.Bytes())
			releaseBuffer(buf)
			return
		}
	}
	l.formatter.Format(&r)
	_, _ = l.out.Write(buf.Bytes())
	releaseBuffer(buf)
}
