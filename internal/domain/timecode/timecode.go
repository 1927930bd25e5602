package timecode

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrMalformed reports a timecode string that does not match the expected
// pattern (missing separators, non-numeric fields, wrong field width).
var ErrMalformed = errors.New("malformed timestamp")

var (
	trackRE = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2}),(\d{3})$`)
	clockRE = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})$`)
)

// ParseTrack decodes a subtitle-track timecode (HH:MM:SS,mmm) into seconds,
// losslessly to millisecond precision.
func ParseTrack(s string) (float64, error) {
	m := trackRE.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	sec, _ := strconv.Atoi(m[3])
	ms, _ := strconv.Atoi(m[4])
	return float64(h)*3600 + float64(mi)*60 + float64(sec) + float64(ms)/1000, nil
}

// ParseClock decodes a clip-window timecode (HH:MM:SS) into seconds.
func ParseClock(s string) (float64, error) {
	m := clockRE.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	sec, _ := strconv.Atoi(m[3])
	return float64(h)*3600 + float64(mi)*60 + float64(sec), nil
}

// Parse accepts either the track form or the clock form.
func Parse(s string) (float64, error) {
	if v, err := ParseTrack(s); err == nil {
		return v, nil
	}
	return ParseClock(s)
}
