package schedule

import (
	"regexp"
	"strings"
	"time"
)

// ClosedDay is one token of a restaurant's regular closing days: a weekday
// letter, 祝 (national holidays), 年末年始 (year-end/new-year) or 不定休
// (irregular closure).
type ClosedDay string

const (
	ClosedOnHoliday      ClosedDay = "祝"
	ClosedYearEndNewYear ClosedDay = "年末年始"
	ClosedIrregular      ClosedDay = "不定休"
)

// ClosedDaySet lists the days a restaurant is closed regardless of any
// window that would otherwise match. Empty means no known regular closure.
type ClosedDaySet []ClosedDay

// Contains reports whether the set carries the given token.
func (s ClosedDaySet) Contains(d ClosedDay) bool {
	for _, c := range s {
		if c == d {
			return true
		}
	}
	return false
}

// ClosedDayForWeekday returns the weekday-letter token for a calendar day.
func ClosedDayForWeekday(wd time.Weekday) ClosedDay {
	return ClosedDay(LetterForWeekday(wd))
}

// closedDayRules is the normalization table for regular-holiday text. Same
// pipeline shape as the business-hours table, different synonym vocabulary.
var closedDayRules = []rewriteRule{
	lit("月曜日", "月"),
	lit("火曜日", "火"),
	lit("水曜日", "水"),
	lit("土曜日", "土"),
	lit("日曜日", "日"),
	lit("日曜", "日"),
	lit("祝日", "祝"),
	lit("なし", "年中無休"),
	lit("年中無休", "無休"),
	lit("・", ""),
	lit("、", ""),
	// meal-period words show up here by data error; strip them
	lit("ディナー", ""),
	// recurring typo in the source data
	lit("年始年始", "年末年始"),
}

var (
	// closedDayAlphabetRe validates that normalized text is nothing but
	// repeats of the closed-day token alphabet.
	closedDayAlphabetRe = regexp.MustCompile(`^([月火水木金土日祝]|年末年始|無休|不定休)+$`)

	// closedDayTokenRe re-scans validated text, collecting weekday runs and
	// composite tokens. Composite alternatives sit after the weekday class so
	// a run never eats into them.
	closedDayTokenRe = regexp.MustCompile(`([月火水木金土日祝]+)|(年末年始)|(無休)|(不定休)`)
)

// ParseClosedDays converts a restaurant's raw regular-holiday text into its
// closed-day token set. Weekday letters are collected individually; 年末年始
// and 不定休 each become one composite tag; 無休 ("never closed") sets a flag
// and must not coexist with any token.
func ParseClosedDays(raw string) (ClosedDaySet, error) {
	s := applyRules(closedDayRules, strings.Join(splitScrapedLines(raw), "\n"))

	if !closedDayAlphabetRe.MatchString(s) {
		return nil, &UnrecognizedTokenError{Text: s}
	}

	var set ClosedDaySet
	neverClosed := false
	for _, m := range closedDayTokenRe.FindAllStringSubmatch(s, -1) {
		switch {
		case m[3] != "":
			neverClosed = true
		case m[1] != "":
			for _, r := range m[1] {
				set = append(set, ClosedDay(r))
			}
		case m[2] != "":
			set = append(set, ClosedYearEndNewYear)
		case m[4] != "":
			set = append(set, ClosedIrregular)
		}
	}

	if neverClosed && len(set) > 0 {
		return nil, &IntegrityError{Text: s, Tokens: set}
	}
	return set, nil
}
