package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// spanPattern is the constant ("c") span layout: [-][d.]hh:mm:ss[.fffffff].
var spanPattern = regexp.MustCompile(`^(-)?(?:(\d{1,8})\.)?(\d{1,2}):(\d{1,2}):(\d{1,2})(?:\.(\d{1,7}))?$`)

// ParseSpan parses a duration written in the constant span layout.
// Hours must be below 24 and minutes and seconds below 60.
func ParseSpan(s string) (time.Duration, error) {
	m := spanPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("invalid span %q", s)
	}
	days := atoiOrZero(m[2])
	hours := atoiOrZero(m[3])
	minutes := atoiOrZero(m[4])
	seconds := atoiOrZero(m[5])
	if hours > 23 || minutes > 59 || seconds > 59 {
		return 0, fmt.Errorf("invalid span %q", s)
	}
	d := time.Duration(days)*24*time.Hour +
		time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second
	if frac := m[6]; frac != "" {
		// seven fractional digits are 100ns ticks
		ticks := atoiOrZero(frac + strings.Repeat("0", 7-len(frac)))
		d += time.Duration(ticks) * 100 * time.Nanosecond
	}
	if m[1] == "-" {
		d = -d
	}
	return d, nil
}

// FormatSpan renders d in the constant span layout, e.g. 01:30:00 or
// 1.02:03:04.5000000.  The fraction is only written when non-zero.
func FormatSpan(d time.Duration) string {
	var b strings.Builder
	if d < 0 {
		b.WriteByte('-')
		d = -d
	}
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second
	if days > 0 {
		b.WriteString(strconv.FormatInt(int64(days), 10))
		b.WriteByte('.')
	}
	fmt.Fprintf(&b, "%02d:%02d:%02d", hours, minutes, seconds)
	if ticks := d / 100; ticks > 0 {
		fmt.Fprintf(&b, ".%07d", ticks)
	}
	return b.String()
}

func atoiOrZero(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
