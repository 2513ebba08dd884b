package spdlog

import "github.com/Montellese/spdlog/ansi"

func resolvePalette(palette *ansi.Palette) *ansi.Palette {
	if palette != nil {
		return palette
	}
	return &ansi.PaletteDefault
}

// levelColor maps a record level to its palette entry. Levels outside the
// palette render uncolored.
func levelColor(p *ansi.Palette, l Level) string {
	switch l {
	case TraceLevel:
		return p.Trace
	case DebugLevel:
		return p.Debug
	case InfoLevel:
		return p.Info
	case WarnLevel:
		return p.Warn
	case ErrorLevel:
		return p.Error
	case CriticalLevel:
		return p.Critical
	default:
		return ""
	}
}
