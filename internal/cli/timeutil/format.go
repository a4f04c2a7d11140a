// Package timeutil formats times and durations for CLI output.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// localTimeFormat is the layout for local timestamps in CLI output.
const localTimeFormat = "Mon Jan 2 15:04:05 2006"

// FormatUptime renders a Go duration string (e.g. "72h30m15s") as
// "3d 0h 30m 15s", omitting leading units that are zero. The input is
// returned unchanged if it does not parse.
func FormatUptime(uptime string) string {
	d, err := time.ParseDuration(uptime)
	if err != nil {
		return uptime
	}

	total := int64(d.Seconds())
	units := []struct {
		suffix string
		size   int64
	}{
		{"d", 86400},
		{"h", 3600},
		{"m", 60},
		{"s", 1},
	}

	var b strings.Builder
	for _, u := range units {
		n := total / u.size
		total %= u.size
		if b.Len() == 0 && n == 0 && u.suffix != "s" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d%s", n, u.suffix)
	}
	return b.String()
}

// FormatTime renders an RFC3339 timestamp as a local time string.
// The input is returned unchanged if it does not parse.
func FormatTime(timestamp string) string {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		if t, err = time.Parse(time.RFC3339Nano, timestamp); err != nil {
			return timestamp
		}
	}
	return t.Local().Format(localTimeFormat)
}

// FormatUnix renders a Unix timestamp (seconds) as a local time string.
func FormatUnix(sec int64) string {
	return time.Unix(sec, 0).Local().Format(localTimeFormat)
}
