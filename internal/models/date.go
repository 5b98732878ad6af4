package models

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date on the wire, rendered as "2006-01-02". Full
// RFC 3339 timestamps are also accepted on input. An empty string decodes to
// the zero Date, which patch handling treats as "no change".
type Date struct {
	time.Time
}

// NewDate builds a Date from any instant, truncated to the UTC day.
func NewDate(t time.Time) Date {
	return Date{Time: t.UTC().Truncate(24 * time.Hour)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
	}
	d.Time = t.UTC()
	return nil
}
