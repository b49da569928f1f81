package log

import (
	"slices"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{" warn ", LevelWarn},
		{"error", LevelError},
		{"info+2", Level(2)},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(2), "info+2"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestLevelsRoundTrip(t *testing.T) {
	levels := slices.Collect(Levels())
	if len(levels) != 5 {
		t.Fatalf("Levels() yielded %d names, want 5", len(levels))
	}

	for _, name := range levels {
		if got := ParseLevel(name).String(); got != name {
			t.Errorf("ParseLevel(%q).String() = %q", name, got)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{" Text ", FormatText},
		{"xml", DefaultFormat},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.in); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if got := slices.Collect(Formats()); !slices.Equal(got, []string{"text", "json"}) {
		t.Errorf("Formats() = %v", got)
	}

	if got := Format(9).String(); got != "Format(9)" {
		t.Errorf("Format(9).String() = %q", got)
	}
}

func TestOptionsSetFields(t *testing.T) {
	c := apply(config{},
		WithLevel(LevelWarn),
		WithFormat(FormatJSON),
		WithCaller(true),
		WithPretty(false),
		WithOutput(nil),
	)

	if c.level != LevelWarn {
		t.Errorf("level = %v, want warn", c.level)
	}

	if c.format != FormatJSON {
		t.Errorf("format = %v, want json", c.format)
	}

	if !c.caller {
		t.Error("caller = false, want true")
	}

	if c.pretty {
		t.Error("pretty = true, want false")
	}

	if c.output == nil {
		t.Error("nil output should be replaced with io.Discard")
	}
}

func TestMakeFormatTimeFunc(t *testing.T) {
	now := time.Date(2023, 10, 15, 14, 30, 45, 123456789, time.UTC)

	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{"rfc3339", "RFC3339", "2023-10-15T14:30:45Z"},
		{"rfc3339 nano", "RFC3339Nano", "2023-10-15T14:30:45.123456789Z"},
		{"kitchen", "kitchen", "2:30PM"},
		{"date time", "DateTime", "2023-10-15 14:30:45"},
		{"custom verbatim", "2006/01/02", "2023/10/15"},
		{"none", "none", ""},
		{"empty", "  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := makeFormatTimeFunc(tt.layout)(now); got != tt.want {
				t.Errorf("format(%q) = %q, want %q", tt.layout, got, tt.want)
			}
		})
	}
}
