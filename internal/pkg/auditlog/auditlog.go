// Package auditlog renders the provenance notes stored alongside students and subjects.
package auditlog

import (
	"fmt"
	"time"
)

// TimestampLayout is the persisted rendering of the audit timestamp.
const TimestampLayout = "1/2/2006 3:04:05 PM"

// Clock returns the current time. Services take one so tests can pin it.
type Clock func() time.Time

// Created returns "Created on {ts} - {note}".
func Created(at time.Time, note string) string {
	return fmt.Sprintf("Created on %s - %s", at.Format(TimestampLayout), note)
}

// Updated returns "Updated on {ts} - {note}".
func Updated(at time.Time, note string) string {
	return fmt.Sprintf("Updated on %s - %s", at.Format(TimestampLayout), note)
}

// Seeded returns "Seeded on {ts}".
func Seeded(at time.Time) string {
	return "Seeded on " + at.Format(TimestampLayout)
}
