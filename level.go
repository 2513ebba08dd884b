package spdlog

import "strings"

// Level defines log severity levels.
type Level int8

const (
	// TraceLevel defines trace log level.
	TraceLevel Level = iota
	// DebugLevel defines debug log level.
	DebugLevel
	// InfoLevel defines info log level.
	InfoLevel
	// WarnLevel defines warn log level.
	WarnLevel
	// ErrorLevel defines error log level.
	ErrorLevel
	// CriticalLevel defines critical log level.
	CriticalLevel
	// OffLevel defines an absent log level.
	OffLevel
)

// levelNames and levelShortNames are the process-wide string tables consumed
// by the %l and %L directives. Indexed by Level; read-only after init.
var levelNames = [...]string{
	TraceLevel:    "trace",
	DebugLevel:    "debug",
	InfoLevel:     "info",
	WarnLevel:     "warning",
	ErrorLevel:    "error",
	CriticalLevel: "critical",
	OffLevel:      "off",
}

var levelShortNames = [...]string{
	TraceLevel:    "T",
	DebugLevel:    "D",
	InfoLevel:     "I",
	WarnLevel:     "W",
	ErrorLevel:    "E",
	CriticalLevel: "C",
	OffLevel:      "O",
}

// String returns the full lowercase name of the level, e.g. "warning".
func (l Level) String() string {
	if l < TraceLevel || l > OffLevel {
		return "info"
	}
	return levelNames[l]
}

// ShortString returns the single-letter form of the level, e.g. "W".
func (l Level) ShortString() string {
	if l < TraceLevel || l > OffLevel {
		return "I"
	}
	return levelShortNames[l]
}

// ParseLevel converts a textual level into a Level value. It accepts values
// such as "trace", "debug", "info", "warn", "warning", "error", "err",
// "critical", "crit", and "off" (case insensitive).
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "trace":
		return TraceLevel, true
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error", "err":
		return ErrorLevel, true
	case "critical", "crit":
		return CriticalLevel, true
	case "off":
		return OffLevel, true
	default:
		return InfoLevel, false
	}
}
