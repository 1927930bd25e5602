package timecode

import (
	"errors"
	"testing"
)

func TestParseTrack(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"00:00:01,500", 1.5, false},
		{"01:00:00,000", 3600.0, false},
		{"00:01:02,003", 62.003, false},
		{"10:59:59,999", 39599.999, false},
		{"00:00:01.500", 0, true}, // wrong millisecond separator
		{"0:00:01,500", 0, true},  // narrow hour field
		{"00:00:01,50", 0, true},  // two-digit milliseconds
		{"00:00:xx,500", 0, true},
		{"00:00:01", 0, true}, // clock form is not a track timecode
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTrack(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformed) {
					t.Fatalf("expected ErrMalformed, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseTrack(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"00:00:00", 0, false},
		{"00:01:30", 90, false},
		{"01:02:03", 3723, false},
		{"00:00:01,500", 0, true},
		{"1:02:03", 0, true},
		{"00:00", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformed) {
					t.Fatalf("expected ErrMalformed, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseClock(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_AcceptsBothForms(t *testing.T) {
	if v, err := Parse("00:00:01,500"); err != nil || v != 1.5 {
		t.Fatalf("track form: got %v, %v", v, err)
	}
	if v, err := Parse("00:01:00"); err != nil || v != 60 {
		t.Fatalf("clock form: got %v, %v", v, err)
	}
	if _, err := Parse("garbage"); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}
