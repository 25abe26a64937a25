package canon

import (
	"strings"
	"time"
)

// timeLayouts are tried in order by ParseTime. The first is the output
// form.
var timeLayouts = []string{
	time.RFC3339Nano,
	"01/02/2006 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func ParseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t
		}
	}
	return time.Time{}
}
