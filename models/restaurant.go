package models

import (
	"fmt"

	"kanda-curry/schedule"
)

// Restaurant is one stamp-rally restaurant: the scraped record plus the
// schedule parsed from it. Raw text fields are kept alongside the parsed
// form so clients can display the original wording.
type Restaurant struct {
	Code         int     `json:"code"`
	Name         string  `json:"name"`
	Course       string  `json:"course"`
	URL          string  `json:"url"`
	ThumbnailURL string  `json:"tn_url"`
	Address      string  `json:"address"`
	Lat          float64 `json:"lat,omitempty"`
	Lng          float64 `json:"lng,omitempty"`

	BusinessHours     []schedule.Window     `json:"business_hours"`
	BusinessHoursRaw  string                `json:"business_hours_raw"`
	RegularHoliday    schedule.ClosedDaySet `json:"regular_holiday"`
	RegularHolidayRaw string                `json:"regular_holiday_raw"`
}

// Schedule assembles the evaluator's view of this restaurant.
func (r *Restaurant) Schedule() schedule.RestaurantSchedule {
	return schedule.RestaurantSchedule{
		Windows:    r.BusinessHours,
		ClosedDays: r.RegularHoliday,
	}
}

func (r *Restaurant) ToString() string {
	return fmt.Sprintf("Restaurant(code=%d, name=%s, course=%s, address=%s)",
		r.Code, r.Name, r.Course, r.Address)
}
