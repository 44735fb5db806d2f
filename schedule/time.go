package schedule

import "fmt"

// Time is a wall-clock time of day. Hour may exceed 23: closing and
// last-order times past midnight are encoded as hours past the start of the
// nominal day (26:00 means 02:00 on the following day).
type Time struct {
	Hour int `json:"hour"`
	Min  int `json:"min"`
}

// NewTime builds a Time from an hour and a minute.
func NewTime(hour, min int) Time {
	return Time{Hour: hour, Min: min}
}

// ToMinutes converts the time to minutes since the start of the nominal day.
func (t Time) ToMinutes() int {
	return t.Hour*60 + t.Min
}

// DiffMinutes returns t - rhs in minutes.
func (t Time) DiffMinutes(rhs Time) int {
	return t.ToMinutes() - rhs.ToMinutes()
}

// Before reports whether t is strictly earlier than rhs.
func (t Time) Before(rhs Time) bool {
	return t.ToMinutes() < rhs.ToMinutes()
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Min)
}
