// ABOUTME: Duration formatting utilities for title runtimes
// ABOUTME: Renders minute counts as compact and long human-readable strings

package duration

import (
	"fmt"
	"strings"
)

// FormatRuntime renders minutes as "1h 42m", "45m" or "2h". Non-positive input yields "".
func FormatRuntime(minutes int) string {
	if minutes <= 0 {
		return ""
	}

	hours := minutes / 60
	rest := minutes % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", rest)
	case rest == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, rest)
	}
}

// MinutesToHumanReadable converts minutes to a long form such as "1 hour 42 minutes"
func MinutesToHumanReadable(minutes int) string {
	if minutes <= 0 {
		return ""
	}

	hours := minutes / 60
	rest := minutes % 60

	parts := []string{}
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if rest > 0 {
		parts = append(parts, plural(rest, "minute"))
	}

	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
