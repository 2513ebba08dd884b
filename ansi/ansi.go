// Package ansi provides the ANSI escape sequences and per-level color
// palettes used by spdlog's colored console output. Loggers resolve a
// palette once at construction; PaletteByName supports selection from
// configuration, so callers can apply 16- or 256-color schemes without
// touching spdlog internals.
package ansi

// Reset is the ANSI escape code that clears all terminal styling; the
// remaining constants expose the common ANSI color sequences the built-in
// palettes are made of.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Faint         = "\x1b[90m"
	Red           = "\x1b[31m"
	Green         = "\x1b[32m"
	Yellow        = "\x1b[33m"
	Blue          = "\x1b[34m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	Gray          = "\x1b[37m"
	BrightRed     = "\x1b[1;31m"
	BrightGreen   = "\x1b[1;32m"
	BrightYellow  = "\x1b[1;33m"
	BrightBlue    = "\x1b[1;34m"
	BrightMagenta = "\x1b[1;35m"
	BrightCyan    = "\x1b[1;36m"
	BrightWhite   = "\x1b[1;37m"
	BoldOnRed     = "\x1b[1;41m"
)

// Palette assigns one ANSI sequence to each severity. An empty entry renders
// that level without color.
type Palette struct {
	Trace    string
	Debug    string
	Info     string
	Warn     string
	Error    string
	Critical string
}

// PaletteDefault is the classic colored console scheme: quiet levels stay
// plain, warnings and errors stand out, critical inverts to a red background.
var PaletteDefault = Palette{
	Trace:    Gray,
	Debug:    Cyan,
	Info:     Green,
	Warn:     BrightYellow,
	Error:    BrightRed,
	Critical: BoldOnRed,
}

// PaletteDisabled renders every level uncolored.
var PaletteDisabled = Palette{}

// 256-color themes.
var (
	PaletteDracula = Palette{
		Trace:    "\x1b[38;5;61m",
		Debug:    "\x1b[38;5;117m",
		Info:     "\x1b[38;5;84m",
		Warn:     "\x1b[38;5;228m",
		Error:    "\x1b[38;5;203m",
		Critical: "\x1b[1;38;5;212m",
	}

	PaletteGruvbox = Palette{
		Trace:    "\x1b[38;5;245m",
		Debug:    "\x1b[38;5;109m",
		Info:     "\x1b[38;5;142m",
		Warn:     "\x1b[38;5;214m",
		Error:    "\x1b[38;5;167m",
		Critical: "\x1b[1;38;5;167m",
	}

	PaletteMonokai = Palette{
		Trace:    "\x1b[38;5;242m",
		Debug:    "\x1b[38;5;81m",
		Info:     "\x1b[38;5;148m",
		Warn:     "\x1b[38;5;186m",
		Error:    "\x1b[38;5;197m",
		Critical: "\x1b[1;38;5;197m",
	}

	PaletteNord = Palette{
		Trace:    "\x1b[38;5;60m",
		Debug:    "\x1b[38;5;110m",
		Info:     "\x1b[38;5;108m",
		Warn:     "\x1b[38;5;222m",
		Error:    "\x1b[38;5;167m",
		Critical: "\x1b[1;38;5;167m",
	}

	PaletteSolarizedDark = Palette{
		Trace:    "\x1b[38;5;240m",
		Debug:    "\x1b[38;5;37m",
		Info:     "\x1b[38;5;64m",
		Warn:     "\x1b[38;5;136m",
		Error:    "\x1b[38;5;160m",
		Critical: "\x1b[1;38;5;125m",
	}

	PaletteTokyoNight = Palette{
		Trace:    "\x1b[38;5;103m",
		Debug:    "\x1b[38;5;111m",
		Info:     "\x1b[38;5;149m",
		Warn:     "\x1b[38;5;179m",
		Error:    "\x1b[38;5;210m",
		Critical: "\x1b[1;38;5;210m",
	}
)
