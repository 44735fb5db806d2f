package schedule

// Window is one contiguous opening interval on the days its tag selects.
// Close (and LastOrder) may carry overflow hours after overnight correction.
type Window struct {
	Day       DayTag `json:"day_of_week"`
	Open      Time   `json:"open"`
	Close     Time   `json:"close"`
	LastOrder *Time  `json:"lo,omitempty"`
}

// windowTemplate is the raw grammar extraction before weekday expansion and
// overnight correction.
type windowTemplate struct {
	days      []DayTag
	open      Time
	close     Time
	lastOrder *Time
}

// expand produces one corrected Window per matched weekday letter, or a
// single EveryDay window when the line carried no day run.
func (t windowTemplate) expand() []Window {
	if len(t.days) == 0 {
		return []Window{newWindow(EveryDay, t.open, t.close, t.lastOrder)}
	}
	windows := make([]Window, 0, len(t.days))
	for _, d := range t.days {
		windows = append(windows, newWindow(d, t.open, t.close, t.lastOrder))
	}
	return windows
}

// newWindow applies the overnight correction: a close at or before the open
// crosses midnight and gets 24 hours added, as does a last order earlier
// than the open.
func newWindow(day DayTag, open, close Time, lastOrder *Time) Window {
	if close.ToMinutes() <= open.ToMinutes() {
		close.Hour += 24
	}
	var lo *Time
	if lastOrder != nil {
		v := *lastOrder
		if v.Before(open) {
			v.Hour += 24
		}
		lo = &v
	}
	return Window{Day: day, Open: open, Close: close, LastOrder: lo}
}
