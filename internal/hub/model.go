// Package hub provides the hub check-in domain model.
package hub

import (
	"fmt"
	"time"
)

// DateFormat is the wire format for visit dates.
const DateFormat = "2006-01-02"

// Profile identifies the authenticated user.
type Profile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Person is the owner of a visit as embedded in visit records.
type Person struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Visit is one person's presence record for one calendar date.
// The server holds at most one visit per (person, date) pair.
type Visit struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Notes  string `json:"notes,omitempty"`
	Person Person `json:"person"`
}

// HasNotes reports whether the visit carries non-empty notes.
// Absent and empty notes render the same everywhere.
func (v *Visit) HasNotes() bool {
	return v.Notes != ""
}

// ValidateDate checks that s is a real calendar date in YYYY-MM-DD form.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateFormat, s); err != nil {
		return fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return nil
}

// Today returns the local calendar date in wire format.
func Today() string {
	return time.Now().Format(DateFormat)
}
