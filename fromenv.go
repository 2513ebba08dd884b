package spdlog

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Montellese/spdlog/ansi"
)

// LoggerFromEnvOption customizes LoggerFromEnv behavior.
type LoggerFromEnvOption func(*loggerFromEnvConfig)

type loggerFromEnvConfig struct {
	prefix  string
	options Options
	writer  io.Writer
}

// WithEnvPrefix overrides the environment variable prefix used by
// LoggerFromEnv.
func WithEnvPrefix(prefix string) LoggerFromEnvOption {
	return func(cfg *loggerFromEnvConfig) {
		cfg.prefix = prefix
	}
}

// WithEnvOptions seeds LoggerFromEnv with explicit Options values.
func WithEnvOptions(opts Options) LoggerFromEnvOption {
	return func(cfg *loggerFromEnvConfig) {
		cfg.options = opts
	}
}

// WithEnvWriter seeds LoggerFromEnv with a default output writer.
func WithEnvWriter(w io.Writer) LoggerFromEnvOption {
	return func(cfg *loggerFromEnvConfig) {
		cfg.writer = w
	}
}

// LoggerFromEnv builds a named logger from environment variables, allowing
// optional seeded options and writers. Environment values override supplied
// options.
//
// Recognised variables are: {prefix}PATTERN, UTC, EOL (lf|crlf), OMIT_DATE,
// OMIT_NAME, NO_COLOR, FORCE_COLOR, PALETTE, and OUTPUT. OUTPUT accepts
// stdout, stderr, default, a file path, or stdout+/stderr+/default+<path> to
// tee. The default prefix is "LOG_". A failed OUTPUT open falls back to the
// base writer and is reported through the returned logger itself.
func LoggerFromEnv(name string, opts ...LoggerFromEnvOption) *Logger {
	cfg := loggerFromEnvConfig{prefix: "LOG_"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	resolvedOpts := cfg.options
	baseWriter := cfg.writer
	if baseWriter == nil {
		baseWriter = os.Stdout
	}
	prefix := cfg.prefix
	if value, ok := lookupEnv(prefix, "PATTERN"); ok && value != "" {
		// Patterns pass through untrimmed; spaces are layout.
		resolvedOpts.Pattern = value
	}
	if value, ok := lookupEnv(prefix, "UTC"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolvedOpts.UTC = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "EOL"); ok {
		if parsed, ok := parseEnvEOL(value); ok {
			resolvedOpts.EOL = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "OMIT_DATE"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolvedOpts.OmitDate = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "OMIT_NAME"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolvedOpts.OmitName = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "NO_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolvedOpts.NoColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "FORCE_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolvedOpts.ForceColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "PALETTE"); ok {
		resolvedOpts.Palette = ansi.PaletteByName(value)
	}
	outputValue, hasOutput := lookupEnv(prefix, "OUTPUT")
	writer := baseWriter
	var outputErr error
	if hasOutput {
		if resolved, err := writerFromEnvOutput(outputValue, baseWriter); err != nil {
			outputErr = err
		} else {
			writer = resolved
		}
	}
	logger := NewWithOptions(name, writer, resolvedOpts)
	if outputErr != nil {
		logger.Errorf("log output %q unavailable: %v", strings.TrimSpace(outputValue), outputErr)
	}
	return logger
}

func lookupEnv(prefix, key string) (string, bool) {
	if prefix == "" {
		return os.LookupEnv(key)
	}
	return os.LookupEnv(prefix + key)
}

func parseEnvBool(value string) (bool, bool) {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return parsed, true
}

func parseEnvEOL(value string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "lf":
		return "\n", true
	case "crlf":
		return "\r\n", true
	default:
		return "", false
	}
}

func writerFromEnvOutput(value string, base io.Writer) (io.Writer, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return base, nil
	}
	if base == nil {
		base = io.Discard
	}
	lowered := strings.ToLower(trimmed)
	switch lowered {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	case "default":
		return base, nil
	}
	const (
		stdoutPrefix  = "stdout+"
		stderrPrefix  = "stderr+"
		defaultPrefix = "default+"
	)
	switch {
	case strings.HasPrefix(lowered, stdoutPrefix):
		path := strings.TrimSpace(trimmed[len(stdoutPrefix):])
		if path == "" {
			return os.Stdout, nil
		}
		fileWriter, err := openLogOutputFile(path)
		if err != nil {
			return base, err
		}
		return newTeeWriter(os.Stdout, fileWriter), nil
	case strings.HasPrefix(lowered, stderrPrefix):
		path := strings.TrimSpace(trimmed[len(stderrPrefix):])
		if path == "" {
			return os.Stderr, nil
		}
		fileWriter, err := openLogOutputFile(path)
		if err != nil {
			return base, err
		}
		return newTeeWriter(os.Stderr, fileWriter), nil
	case strings.HasPrefix(lowered, defaultPrefix):
		path := strings.TrimSpace(trimmed[len(defaultPrefix):])
		if path == "" {
			return base, nil
		}
		fileWriter, err := openLogOutputFile(path)
		if err != nil {
			return base, err
		}
		return newTeeWriter(base, fileWriter), nil
	default:
		fileWriter, err := openLogOutputFile(trimmed)
		if err != nil {
			return base, err
		}
		return fileWriter, nil
	}
}

func openLogOutputFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log output %q: %w", path, err)
	}
	return file, nil
}
