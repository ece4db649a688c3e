package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockToMinutes converts a same-day clock time "HH:MM" to minutes since
// midnight.
func ClockToMinutes(clock string) (int, error) {
	h, m, err := splitHM(clock)
	if err != nil {
		return 0, err
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock time out of range: %q", clock)
	}
	return h*60 + m, nil
}

// DurationToMinutes converts a travel duration in its native "H:MM" form
// (as carried on a ticket record) to total minutes. Malformed input yields 0.
func DurationToMinutes(duration string) int {
	h, m, err := splitHM(duration)
	if err != nil || h < 0 || m < 0 {
		return 0
	}
	return h*60 + m
}

// HumanDuration renders an "H:MM" duration for display. Zero hours renders
// as "Nm"; nonzero hours as "HhMMm" with minutes zero-padded.
func HumanDuration(duration string) string {
	h, m, err := splitHM(duration)
	if err != nil || h < 0 || m < 0 {
		return duration
	}
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}

func splitHM(s string) (int, int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("not an H:MM value: %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad hour in %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad minute in %q: %w", s, err)
	}
	return h, m, nil
}
