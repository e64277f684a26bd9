package goquery

import (
	"strings"

	"github.com/araddon/dateparse"
)

// isoLayout matches the ISO-8601 form with millisecond precision in UTC.
const isoLayout = "2006-01-02T15:04:05.000Z"

// NormalizeDate converts a date string in any common format to ISO-8601 in
// UTC. Strings that cannot be parsed are returned unchanged.
func NormalizeDate(raw string) (normalized string) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return raw
	}

	// dateparse can panic on some malformed inputs.
	defer func() {
		if recover() != nil {
			normalized = raw
		}
	}()

	t, err := dateparse.ParseAny(s)
	if err != nil {
		return raw
	}
	return t.UTC().Format(isoLayout)
}
