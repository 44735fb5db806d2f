package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const noteLinePrefix = "※"

var (
	// hoursLineRe is the window grammar: optional meal-period label, optional
	// weekday/holiday run, open HH:MM, 〜, close HH:MM, optional (LO [HH:MM]).
	hoursLineRe = regexp.MustCompile(`^(?P<meal>カフェ|ランチ|ディナー|バー|モーニング|ティー)? *(?P<days>[月火水木金土日祝]+)? *(?P<open_hour>[0-9]+):(?P<open_min>[0-9]+)〜(?P<close_hour>[0-9]+):(?P<close_min>[0-9]+) *(\((?P<lo>LO) *((?P<lo_hour>[0-9]+):(?P<lo_min>[0-9]+)?)?\))?$`)

	// clockLikeRe gates lines that carry no time at all; they are treated as
	// annotations, not schedule entries.
	clockLikeRe = regexp.MustCompile(`\d[:：]\d`)
)

// ParseBusinessHours converts a restaurant's raw business-hours text into
// its full window list. Note lines (※) and lines without a digit:digit pair
// are skipped; the first remaining line that does not match the grammar
// after normalization aborts the whole list.
func ParseBusinessHours(raw string) ([]Window, error) {
	var windows []Window
	for _, line := range splitScrapedLines(raw) {
		if line == "" || strings.HasPrefix(line, noteLinePrefix) {
			continue
		}
		if !clockLikeRe.MatchString(line) {
			continue
		}
		normalized := NormalizeHoursLine(line)
		tpl := parseHoursLine(normalized)
		if tpl == nil {
			return nil, &UnrecognizedLineError{Line: normalized}
		}
		windows = append(windows, tpl.expand()...)
	}
	return windows, nil
}

// parseHoursLine matches one normalized line against the window grammar.
// A nil result means the line does not match.
func parseHoursLine(line string) *windowTemplate {
	m := hoursLineRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	get := func(name string) string {
		return m[hoursLineRe.SubexpIndex(name)]
	}
	atoi := func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}

	open := NewTime(atoi(get("open_hour")), atoi(get("open_min")))
	close := NewTime(atoi(get("close_hour")), atoi(get("close_min")))

	var lastOrder *Time
	if h, min := get("lo_hour"), get("lo_min"); h != "" && min != "" {
		t := NewTime(atoi(h), atoi(min))
		lastOrder = &t
	} else if get("lo") != "" {
		// a bare LO marker means last order at closing time
		t := close
		lastOrder = &t
	}

	var days []DayTag
	for _, r := range get("days") {
		if d, ok := DayTagForLetter(r); ok {
			days = append(days, d)
		}
	}

	return &windowTemplate{days: days, open: open, close: close, lastOrder: lastOrder}
}

// splitScrapedLines turns <br>-separated scraped text into lines, with all
// whitespace other than line breaks collapsed to plain spaces.
func splitScrapedLines(raw string) []string {
	s := strings.ReplaceAll(raw, "<br>", "\n")
	s = strings.Map(func(r rune) rune {
		if r != '\n' && unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Split(s, "\n")
}
