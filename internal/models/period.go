package models

import "fmt"

// Period is an inclusive [Start, End] range of calendar days with a display label.
type Period struct {
	Start Date   `json:"start"`
	End   Date   `json:"end"`
	Label string `json:"label"`
}

// Days returns the number of calendar days covered, both ends inclusive.
func (p Period) Days() int {
	return p.End.DaysSince(p.Start) + 1
}

// Contains reports whether d falls inside the period.
func (p Period) Contains(d Date) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

func (p Period) IsZero() bool {
	return p.Start.IsZero() && p.End.IsZero()
}

func (p Period) String() string {
	return fmt.Sprintf("%s..%s", p.Start, p.End)
}
