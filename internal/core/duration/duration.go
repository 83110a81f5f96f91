// Package duration converts between the HH:MM:SS textual durations stored on
// attendance rows and integer second counts.
package duration

import (
	"fmt"
	"strconv"
	"strings"
)

// ToSeconds parses a HH:MM:SS duration. Parsing is deliberately lenient:
// empty or malformed input yields 0 so that a corrupt row never fails a
// replay pass.
func ToSeconds(text string) int {
	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return 0
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0
	}
	seconds, err := strconv.Atoi(parts[2])
	if err != nil || seconds < 0 || seconds > 59 {
		return 0
	}

	return hours*3600 + minutes*60 + seconds
}

// FromSeconds formats a second count as zero-padded HH:MM:SS. The hours field
// is unbounded: weekly and monthly totals routinely exceed 24 hours.
// Negative input is clamped to zero.
func FromSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Zero is the canonical zero duration written on every check-in row.
const Zero = "00:00:00"
