package dto

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layouts accepted for a date, tried in order
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// Date is a calendar date that binds from "2000-01-01" as well as from a full
// RFC 3339 timestamp. Values without a zone are read as UTC.
type Date struct {
	time.Time
}

// NewDate wraps t
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("date %q must be YYYY-MM-DD or an RFC 3339 timestamp", raw)
}
