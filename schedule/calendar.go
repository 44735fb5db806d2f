package schedule

import "time"

type monthDay struct {
	month time.Month
	day   int
}

// nationalHolidays is the fixed national-holiday table, one (month, day)
// entry per holiday. Deliberate approximation: year-dependent moving
// holidays are pinned to their published dates.
// https://www8.cao.go.jp/chosei/shukujitsu/gaiyou.html
var nationalHolidays = []monthDay{
	{time.January, 1},
	{time.January, 13},
	{time.February, 11},
	{time.February, 23},
	{time.February, 24},
	{time.March, 20},
	{time.April, 29},
	{time.May, 3},
	{time.May, 4},
	{time.May, 5},
	{time.May, 6},
	{time.July, 23},
	{time.July, 24},
	{time.August, 10},
	{time.September, 21},
	{time.September, 22},
	{time.November, 3},
	{time.November, 23},
}

// IsHoliday reports whether the date of t falls on a national holiday.
func IsHoliday(t time.Time) bool {
	for _, h := range nationalHolidays {
		if h.month == t.Month() && h.day == t.Day() {
			return true
		}
	}
	return false
}
