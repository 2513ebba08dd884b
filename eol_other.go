//go:build !windows

package spdlog

// defaultEOL is the platform line terminator appended after each rendered
// record.
const defaultEOL = "\n"
