package collector

import (
	"fmt"
	"math"
	"time"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// formatBytes renders a byte count in the largest unit that keeps the
// magnitude below 1024, with one decimal place. Zero renders as "--"
// so empty libraries don't show a misleading "0.0 B".
func formatBytes(size int64) string {
	if size == 0 {
		return "--"
	}

	value := float64(size)
	for _, unit := range byteUnits {
		if math.Abs(value) < 1024 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.1f PB", value)
}

// relativeTime renders how long ago an RFC 3339 timestamp was,
// relative to now. Missing or unparsable timestamps yield "".
func relativeTime(dateStr string, now time.Time) string {
	if dateStr == "" {
		return ""
	}

	eventTime, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return ""
	}

	seconds := int(now.Sub(eventTime).Seconds())
	switch {
	case seconds < 60:
		return "Just now"
	case seconds < 3600:
		return fmt.Sprintf("%d min ago", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%d %s ago", seconds/3600, plural("hour", seconds/3600))
	default:
		return fmt.Sprintf("%d %s ago", seconds/86400, plural("day", seconds/86400))
	}
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

// timezoneAbbrev resolves an IANA zone name to its current
// abbreviation for display. Unresolvable zones fall back to the name
// itself; no zone at all means UTC.
func timezoneAbbrev(name string, now time.Time) string {
	if name == "" {
		return "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return name
	}

	abbrev := now.In(loc).Format("MST")
	if abbrev == "" {
		return name
	}
	return abbrev
}
