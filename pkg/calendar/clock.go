package calendar

import (
	"fmt"
	"strings"

	"github.com/interviewdost/backend/pkg/errors"
)

// ParseClock checks that raw is a zero-padded 24-hour "HH:MM" string.
// Slot bounds are compared lexically, so only this form orders correctly.
func ParseClock(raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	var h, m int
	if len(raw) != len("15:04") || raw[2] != ':' {
		return "", errors.Errorf("malformed clock %q", raw)
	}

	_, err := fmt.Sscanf(raw, "%02d:%02d", &h, &m)
	if err != nil || h > 23 || m > 59 {
		return "", errors.Errorf("malformed clock %q", raw)
	}

	return raw, nil
}

// Within reports whether from <= clock <= to for "HH:MM" strings.
func Within(clock, from, to string) bool {
	return from <= clock && clock <= to
}
