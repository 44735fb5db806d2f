package models

// RawRestaurantDetail is the shop-page table before any schedule parsing.
// BusinessHours and RegularHoliday are free-form HTML text fields.
type RawRestaurantDetail struct {
	Code           int    `json:"code"`
	Name           string `json:"name"`
	Address        string `json:"address"`
	BusinessHours  string `json:"business_hours"`
	RegularHoliday string `json:"regular_holiday"`
}
