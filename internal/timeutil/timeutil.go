// Package timeutil converts between ffmpeg's HH:MM:SS.frac timestamp format
// and fractional seconds.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimestamp converts an ffmpeg timestamp (HH:MM:SS or HH:MM:SS.frac)
// to fractional seconds. The hour field may exceed two digits.
//
// Example:
//
//	ParseTimestamp("00:00:10")       // 10, nil
//	ParseTimestamp("01:01:01.50")    // 3661.5, nil
//	ParseTimestamp("N/A")            // 0, error
func ParseTimestamp(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q (want HH:MM:SS.frac)", s)
	}

	hours, err1 := strconv.ParseFloat(parts[0], 64)
	minutes, err2 := strconv.ParseFloat(parts[1], 64)
	seconds, err3 := strconv.ParseFloat(parts[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, fmt.Errorf("invalid timestamp %q (non-numeric field)", s)
	}
	if hours < 0 || minutes < 0 || seconds < 0 {
		return 0, fmt.Errorf("invalid timestamp %q (negative field)", s)
	}

	return hours*3600 + minutes*60 + seconds, nil
}

// FormatSeconds converts fractional seconds to HH:MM:SS.FF format.
//
// Example:
//
//	FormatSeconds(0)      // "00:00:00.00"
//	FormatSeconds(90)     // "00:01:30.00"
//	FormatSeconds(3661)   // "01:01:01.00"
//	FormatSeconds(30.53)  // "00:00:30.53"
func FormatSeconds(seconds float64) string {
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := seconds - float64(hours*3600) - float64(minutes*60)
	return fmt.Sprintf("%02d:%02d:%05.2f", hours, minutes, secs)
}
