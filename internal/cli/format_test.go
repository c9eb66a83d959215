package cli

import "testing"

func TestFormatTokens(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1234, "1.2K"},
		{1_234_567, "1.2M"},
		{1_234_567_890, "1.2B"},
	}
	for _, tt := range tests {
		if got := FormatTokens(tt.n); got != tt.want {
			t.Errorf("FormatTokens(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1_234_567, "1,234,567"},
		{-9_876, "-9,876"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatHour(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "12 AM"},
		{3, "3 AM"},
		{12, "12 PM"},
		{13, "1 PM"},
		{23, "11 PM"},
	}
	for _, tt := range tests {
		if got := FormatHour(tt.hour); got != tt.want {
			t.Errorf("FormatHour(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestFormatDayOfWeek(t *testing.T) {
	if got := FormatDayOfWeek(0); got != "Sun" {
		t.Errorf("FormatDayOfWeek(0) = %q, want Sun", got)
	}
	if got := FormatDayOfWeek(6); got != "Sat" {
		t.Errorf("FormatDayOfWeek(6) = %q, want Sat", got)
	}
	if got := FormatDayOfWeek(9); got != "???" {
		t.Errorf("FormatDayOfWeek(9) = %q, want ???", got)
	}
}
