package spdlog

// DefaultPattern is the canonical line layout. Compiling it yields the same
// bytes as the %+ directive renders in one step.
const DefaultPattern = "[%Y-%m-%d %H:%M:%S.%e] [%n] [%l] %v"

// maxFieldWidth caps the %<digits> width prefix.
const maxFieldWidth = 1 << 20

// Formatter renders one record, appending the complete formatted line
// including the terminator to the record's buffer.
type Formatter interface {
	Format(r *Record)
}

// PatternOptions configure a PatternFormatter beyond the pattern string.
type PatternOptions struct {
	// UTC breaks the record timestamp down in UTC instead of local time.
	UTC bool

	// EOL terminates every line. Empty selects the platform default,
	// "\r\n" on windows and "\n" everywhere else.
	EOL string

	// OmitDate drops the bracketed date-time segment from the %+ line.
	OmitDate bool

	// OmitName drops the bracketed logger-name segment from the %+ line.
	OmitName bool
}

// PatternFormatter renders records according to a pattern string compiled
// once at construction. Ordinary characters pass through verbatim; a %
// introduces a directive, optionally preceded by decimal width digits for
// the width-aware directives (see the package documentation for the selector
// table). Compilation cannot fail: an unknown selector renders as its own
// spelling and a trailing % is dropped.
//
// A compiled formatter is immutable and safe for concurrent use as long as
// every Format call owns its Record and Buffer.
type PatternFormatter struct {
	chain []directive
	utc   bool
	eol   string
}

// NewPatternFormatter compiles pattern with default options.
func NewPatternFormatter(pattern string) *PatternFormatter {
	return NewPatternFormatterWithOptions(pattern, PatternOptions{})
}

// NewPatternFormatterWithOptions compiles pattern with opts.
func NewPatternFormatterWithOptions(pattern string, opts PatternOptions) *PatternFormatter {
	eol := opts.EOL
	if eol == "" {
		eol = defaultEOL
	}
	return &PatternFormatter{
		chain: compilePattern(pattern, opts),
		utc:   opts.UTC,
		eol:   eol,
	}
}

// Format computes the calendar breakdown once, walks the chain in compile
// order appending to r.Buf, then appends the line terminator.
func (f *PatternFormatter) Format(r *Record) {
	tm := breakdown(r.Time, f.utc)
	for _, d := range f.chain {
		d(r.Buf, r, tm)
	}
	r.Buf.AppendString(f.eol)
}

// compilePattern scans pattern once, left to right. Runs of ordinary
// characters aggregate into single literal directives. A % flushes the
// pending run, consumes width digits and exactly one selector character,
// and dispatches. A % whose selector never arrives (end of input, width
// digits included) is dropped.
func compilePattern(pattern string, opts PatternOptions) []directive {
	var chain []directive
	var lit []byte
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			lit = append(lit, c)
			continue
		}
		if len(lit) > 0 {
			chain = append(chain, literalDirective(string(lit)))
			lit = lit[:0]
		}
		j := i + 1
		for j < len(pattern) && pattern[j] >= '0' && pattern[j] <= '9' {
			j++
		}
		if j == len(pattern) {
			break
		}
		digits := pattern[i+1 : j]
		width := 0
		for k := 0; k < len(digits) && width < maxFieldWidth; k++ {
			width = width*10 + int(digits[k]-'0')
		}
		if width > maxFieldWidth {
			width = maxFieldWidth
		}
		chain = append(chain, dispatchSelector(pattern[j], width, digits, opts))
		i = j
	}
	if len(lit) > 0 {
		chain = append(chain, literalDirective(string(lit)))
	}
	return chain
}

// dispatchSelector maps one selector character to its directive. Unknown
// selectors degrade to a literal spelling of the consumed source text, so
// every pattern compiles.
func dispatchSelector(selector byte, width int, digits string, opts PatternOptions) directive {
	switch selector {
	case 'n':
		return nameDirective(width)
	case 'l':
		return levelDirective(width)
	case 'L':
		return shortLevelDirective(width)
	case 't':
		return threadDirective(width)
	case 'P':
		return pidDirective(width)
	case 'v':
		return appendMessage
	case 'a':
		return weekdayDirective(width, false)
	case 'A':
		return weekdayDirective(width, true)
	case 'b', 'h':
		return monthDirective(width, false)
	case 'B':
		return monthDirective(width, true)
	case 'c':
		return appendDateTime
	case 'C':
		return appendShortYear
	case 'Y':
		return appendYear
	case 'D', 'x':
		return appendShortDate
	case 'm':
		return appendMonthNumber
	case 'd':
		return appendDay
	case 'H':
		return appendHour24
	case 'I':
		return appendHour12
	case 'M':
		return appendMinute
	case 'S':
		return appendSecond
	case 'e':
		return appendMillis
	case 'f':
		return appendMicros
	case 'F':
		return appendNanos
	case 'p':
		return appendAMPM
	case 'r':
		return appendClock12
	case 'R':
		return appendClock24
	case 'T', 'X':
		return appendISOTime
	case 'z':
		return appendUTCOffset
	case 'i':
		return appendSequenceID
	case '+':
		return fullDirective(opts.OmitDate, opts.OmitName)
	default:
		return literalDirective("%" + digits + string(selector))
	}
}
