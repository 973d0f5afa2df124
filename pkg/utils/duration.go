package utils

import (
	"strconv"
	"strings"
)

// ParseDurationHours converts an "HH:MM" duration string to whole hours,
// rounding up when the minute part exceeds 30. Unparsable input resolves
// to 0 hours rather than failing the request carrying it.
func ParseDurationHours(raw string) int {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return 0
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hours < 0 {
		return 0
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || minutes < 0 {
		return 0
	}

	if minutes > 30 {
		hours++
	}
	return hours
}
