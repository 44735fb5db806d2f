package schedule

import "testing"

func TestNormalizeHoursLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "full width punctuation",
			in:   "11：00～15：00",
			want: "11:00〜15:00",
		},
		{
			name: "full width parens and last order dots",
			in:   "11:00〜15:00（L.O.14:30）",
			want: "11:00〜15:00(LO14:30)",
		},
		{
			name: "weekday range shorthand",
			in:   "月〜金 11:00〜20:00",
			want: "月火水木金 11:00〜20:00",
		},
		{
			name: "heijitsu expands to weekdays",
			in:   "平日 11:00〜20:00",
			want: "月火水木金 11:00〜20:00",
		},
		{
			name: "separator joined weekday chain",
			in:   "月・火・水 11:00〜15:00",
			want: "月火水 11:00〜15:00",
		},
		{
			name: "parenthesized weekday run",
			in:   "(土日祝) 11:00〜21:00",
			want: "土日祝 11:00〜21:00",
		},
		{
			name: "meal label moved before weekday run",
			in:   "月火 ディナー 17:00〜22:00",
			want: "ディナー 月火 17:00〜22:00",
		},
		{
			name: "spelled out monday",
			in:   "月曜 11:00〜15:00",
			want: "月 11:00〜15:00",
		},
		{
			name: "kara as range marker",
			in:   "11:00から15:00",
			want: "11:00〜15:00",
		},
		{
			name: "dinner typo",
			in:   "デイナー 17:00〜22:00",
			want: "ディナー 17:00〜22:00",
		},
		{
			name: "surrounding space trimmed",
			in:   "  11:00〜15:00 ",
			want: "11:00〜15:00",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeHoursLine(tt.in); got != tt.want {
				t.Errorf("NormalizeHoursLine(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Normalizing twice must not change the result: the rewrite table has to be
// safe against text that is already canonical.
func TestNormalizeHoursLineIdempotent(t *testing.T) {
	inputs := []string{
		"11:00〜15:00 (LO14:30)",
		"ディナー 月火水 17:00〜22:00",
		"月火水木金 11:00〜20:00",
	}
	for _, in := range inputs {
		once := NormalizeHoursLine(in)
		twice := NormalizeHoursLine(once)
		if once != twice {
			t.Errorf("normalization not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
