package domain

import (
	"fmt"
	"strings"
	"time"
)

// Month identifies the calendar month a budget snapshot belongs to.
// The API is loose about the wire format, so parsing accepts a full
// RFC 3339 timestamp, a plain date, or a year-month pair.
type Month struct {
	time.Time
}

var monthLayouts = []string{time.RFC3339, "2006-01-02", "2006-01"}

func (m *Month) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		m.Time = time.Time{}
		return nil
	}
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			m.Time = t
			return nil
		}
	}
	return fmt.Errorf("month: cannot parse %q", s)
}

func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.Format(time.RFC3339) + `"`), nil
}

// Label renders the month for display, e.g. "January 2026".
func (m Month) Label() string {
	if m.IsZero() {
		return ""
	}
	return m.Format("January 2006")
}
