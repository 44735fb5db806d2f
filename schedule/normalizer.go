package schedule

import (
	"regexp"
	"strings"
)

// rewriteRule is one step of an ordered normalization pipeline. A literal
// rule runs strings.ReplaceAll; a pattern rule runs a regexp substitution.
type rewriteRule struct {
	literal string
	pattern *regexp.Regexp
	repl    string
}

func lit(old, repl string) rewriteRule {
	return rewriteRule{literal: old, repl: repl}
}

func re(pattern, repl string) rewriteRule {
	return rewriteRule{pattern: regexp.MustCompile(pattern), repl: repl}
}

func (r rewriteRule) apply(s string) string {
	if r.pattern != nil {
		return r.pattern.ReplaceAllString(s, r.repl)
	}
	return strings.ReplaceAll(s, r.literal, r.repl)
}

// businessHoursRules collapses the notational variants found in scraped
// business-hours text into one canonical vocabulary. Order matters: range
// shorthands must expand before the weekday-run grammar can see them, and
// the weekday-separator rule runs twice to absorb chains like 月・火・水.
var businessHoursRules = []rewriteRule{
	// width and punctuation variants
	lit("～", "〜"),
	lit("（", "("),
	lit("）", ")"),
	// last-order notation
	lit("L.O.", "LO"),
	lit("L.O", "LO"),
	lit("ＬＯ", "LO"),
	// spelled-out day names and range words
	lit("平日", "月〜金"),
	lit("月曜", "月"),
	lit("土曜日", "土"),
	lit("土曜", "土"),
	lit("から", "〜"),
	// weekday-range shorthand
	lit("月〜日", "月火水木金土日"),
	lit("月〜金", "月火水木金"),
	lit("火〜金", "火水木金"),
	lit("月〜土", "月火水木金土"),
	// meal-period synonyms
	lit("デイナー", "ディナー"),
	// separator-joined weekday letters, applied twice
	re(`([月火水木金土日祝])・([月火水木金土日祝])`, "$1$2"),
	re(`([月火水木金土日祝])・([月火水木金土日祝])`, "$1$2"),
	// parenthesized bare weekday run
	re(`\(([月火水木金土日祝]+)\)`, "$1"),
	// colon variants between digit pairs
	re(`(\d{2})[：:](\d{2})`, "$1:$2"),
	// meal-period label must precede its weekday run
	re(`([月火水木金土日祝]+) *(ランチ|ディナー|カフェ|バー|モーニング|ティー)`, "$2 $1"),
	// trailing list separator
	re(`、$`, ""),
	lit("：", ""),
}

// NormalizeHoursLine canonicalizes one line of business-hours text.
func NormalizeHoursLine(line string) string {
	return applyRules(businessHoursRules, line)
}

func applyRules(rules []rewriteRule, s string) string {
	for _, r := range rules {
		s = r.apply(s)
	}
	return strings.TrimSpace(s)
}
