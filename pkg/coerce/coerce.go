// Package coerce parses the noisy value formats found in restaurant portal
// exports: decimal-comma ratings ("4,5 Sterne"), counts with thousands
// separators ("1.234 Bewertungen"), and relative German date phrases
// ("vor 3 Monaten"). Every parser resolves to a documented neutral default
// instead of returning an error; per-row noise must never abort a load.
package coerce

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	numberPattern   = regexp.MustCompile(`\d+\.?\d*`)
	digitRunPattern = regexp.MustCompile(`\d+`)
)

// Rating parses a rating string such as "4,5 Sterne" or "4.8" into a float.
// Decimal commas are normalized to dots before extraction. Returns 0 when the
// string carries no number.
func Rating(s string) float64 {
	normalized := strings.ReplaceAll(s, ",", ".")
	match := numberPattern.FindString(normalized)
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return v
}

// Count parses a review-count string into an integer. Exports frequently
// carry German thousands separators ("1.234"), which split the number into
// digit runs; joining the first two runs reassembles the original value.
// Returns 0 when the string carries no digits.
func Count(s string) int {
	runs := digitRunPattern.FindAllString(s, 2)
	if len(runs) == 0 {
		return 0
	}
	v, err := strconv.Atoi(strings.Join(runs, ""))
	if err != nil {
		return 0
	}
	return v
}

// absoluteDateFormats are tried in order when a date string carries no
// relative-phrase marker.
var absoluteDateFormats = []string{"02.01.2006", "2006-01-02", "02/01/2006"}

// GermanDate resolves a possibly-relative German date phrase ("vor 3 Monaten",
// "gestern", "heute") to an absolute time relative to now. Marker checks run
// in a fixed priority order; the singular forms ("einem Monat") must be
// checked before their generic substrings ("monat"). Strings without a marker
// are tried against DD.MM.YYYY, YYYY-MM-DD and DD/MM/YYYY; anything still
// unparsed resolves to 90 days ago, an unknown-but-moderately-old default.
func GermanDate(s string, now time.Time) time.Time {
	lower := strings.ToLower(s)

	n := 1
	if match := digitRunPattern.FindString(lower); match != "" {
		if v, err := strconv.Atoi(match); err == nil {
			n = v
		}
	}

	switch {
	case strings.Contains(lower, "einem monat"):
		return now.AddDate(0, 0, -30)
	case strings.Contains(lower, "monat"):
		return now.AddDate(0, 0, -n*30)
	case strings.Contains(lower, "einem jahr"):
		return now.AddDate(0, 0, -365)
	case strings.Contains(lower, "jahr"):
		return now.AddDate(0, 0, -n*365)
	case strings.Contains(lower, "einer woche"):
		return now.AddDate(0, 0, -7)
	case strings.Contains(lower, "woche"):
		return now.AddDate(0, 0, -n*7)
	case strings.Contains(lower, "tag"):
		return now.AddDate(0, 0, -n)
	case strings.Contains(lower, "stunde"):
		return now.Add(-time.Duration(n) * time.Hour)
	case strings.Contains(lower, "gestern"):
		return now.AddDate(0, 0, -1)
	case strings.Contains(lower, "heute"):
		return now
	}

	for _, format := range absoluteDateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return now.AddDate(0, 0, -90)
}
