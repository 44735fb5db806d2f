package schedule

import (
	"encoding/json"
	"fmt"
	"time"
)

// DayTag marks which days a Window applies to: one weekday, national
// holidays, or every day when the source line carried no day run.
type DayTag int

const (
	EveryDay DayTag = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
	Holiday
)

var dayLetters = map[DayTag]string{
	Monday:    "月",
	Tuesday:   "火",
	Wednesday: "水",
	Thursday:  "木",
	Friday:    "金",
	Saturday:  "土",
	Sunday:    "日",
	Holiday:   "祝",
}

var lettersToDay = map[rune]DayTag{
	'月': Monday,
	'火': Tuesday,
	'水': Wednesday,
	'木': Thursday,
	'金': Friday,
	'土': Saturday,
	'日': Sunday,
	'祝': Holiday,
}

var weekdayLetters = map[time.Weekday]string{
	time.Monday:    "月",
	time.Tuesday:   "火",
	time.Wednesday: "水",
	time.Thursday:  "木",
	time.Friday:    "金",
	time.Saturday:  "土",
	time.Sunday:    "日",
}

// Letter returns the single-letter day code, or "" for EveryDay.
func (d DayTag) Letter() string {
	return dayLetters[d]
}

// DayTagForLetter maps a weekday/holiday letter to its tag.
func DayTagForLetter(letter rune) (DayTag, bool) {
	d, ok := lettersToDay[letter]
	return d, ok
}

// LetterForWeekday returns the single-letter code for a calendar weekday.
func LetterForWeekday(wd time.Weekday) string {
	return weekdayLetters[wd]
}

// MarshalJSON encodes the tag as its letter; EveryDay becomes "".
func (d DayTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Letter())
}

// UnmarshalJSON decodes a letter back into a tag; "" and null mean EveryDay.
func (d *DayTag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = EveryDay
		return nil
	}
	runes := []rune(s)
	tag, ok := DayTagForLetter(runes[0])
	if !ok || len(runes) != 1 {
		return fmt.Errorf("unknown day letter %q", s)
	}
	*d = tag
	return nil
}
