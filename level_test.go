package spdlog

import "testing"

func TestLevelStrings(t *testing.T) {
	cases := []struct {
		level Level
		name  string
		short string
	}{
		{TraceLevel, "trace", "T"},
		{DebugLevel, "debug", "D"},
		{InfoLevel, "info", "I"},
		{WarnLevel, "warning", "W"},
		{ErrorLevel, "error", "E"},
		{CriticalLevel, "critical", "C"},
		{OffLevel, "off", "O"},
		{Level(42), "info", "I"},
		{Level(-3), "info", "I"},
	}
	for _, tc := range cases {
		if got := tc.level.String(); got != tc.name {
			t.Fatalf("String(%d): got %q want %q", tc.level, got, tc.name)
		}
		if got := tc.level.ShortString(); got != tc.short {
			t.Fatalf("ShortString(%d): got %q want %q", tc.level, got, tc.short)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"trace", TraceLevel, true},
		{"DEBUG", DebugLevel, true},
		{" info ", InfoLevel, true},
		{"warn", WarnLevel, true},
		{"warning", WarnLevel, true},
		{"error", ErrorLevel, true},
		{"err", ErrorLevel, true},
		{"Critical", CriticalLevel, true},
		{"crit", CriticalLevel, true},
		{"off", OffLevel, true},
		{"verbose", InfoLevel, false},
		{"", InfoLevel, false},
	}
	for _, tc := range cases {
		got, ok := ParseLevel(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseLevel(%q): got (%v, %v) want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
