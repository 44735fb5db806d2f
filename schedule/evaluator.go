package schedule

import "time"

// RestaurantSchedule owns a restaurant's parsed windows and closed days.
// It is built once per restaurant record and never mutated afterwards.
type RestaurantSchedule struct {
	Windows    []Window     `json:"business_hours"`
	ClosedDays ClosedDaySet `json:"regular_holiday"`
}

// AvailabilityResult reports whether a schedule is open at a query instant
// and for how many more minutes. Computed fresh per query, never stored.
type AvailabilityResult struct {
	IsOpen         bool `json:"is_open"`
	MinutesToClose int  `json:"minutes_to_close"`
}

// dayShiftBoundary: instants before 05:00 belong to the previous business
// day, so late-night windows stay attributed to the day they started on.
var dayShiftBoundary = NewTime(5, 0)

// Evaluate computes availability at the given instant. The instant must
// already carry the fixed local offset; the evaluator never reads the clock.
func Evaluate(s RestaurantSchedule, at time.Time) AvailabilityResult {
	tod := NewTime(at.Hour(), at.Minute())
	date := at
	if tod.Before(dayShiftBoundary) {
		tod.Hour += 24
		date = at.AddDate(0, 0, -1)
	}

	letter := ClosedDayForWeekday(date.Weekday())
	holiday := IsHoliday(date)

	// Regular closing days override any matching window.
	if s.ClosedDays.Contains(letter) || (holiday && s.ClosedDays.Contains(ClosedOnHoliday)) {
		return AvailabilityResult{}
	}

	best := 0
	for _, w := range s.Windows {
		if m := w.minutesToClose(tod, letter, holiday); m > best {
			best = m
		}
	}
	return AvailabilityResult{IsOpen: best > 0, MinutesToClose: best}
}

// minutesToClose returns how long the window stays open from tod, or 0 when
// the window does not apply to the shifted date or tod lies outside it.
// With a last order set, the last-order time is the effective close.
func (w Window) minutesToClose(tod Time, letter ClosedDay, holiday bool) int {
	switch w.Day {
	case EveryDay:
	case Holiday:
		if !holiday {
			return 0
		}
	default:
		if ClosedDay(w.Day.Letter()) != letter {
			return 0
		}
	}

	end := w.Close
	if w.LastOrder != nil {
		end = *w.LastOrder
	}
	if !tod.Before(w.Open) && tod.Before(end) {
		return end.DiffMinutes(tod)
	}
	return 0
}
