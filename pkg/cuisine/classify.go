// Package cuisine classifies restaurants into coarse market segments by
// keyword matching over name and address. It exists for cohort comparison
// (Turkish vs Sushi market views), not as a general cuisine taxonomy.
package cuisine

import "strings"

const (
	Turkish = "Turkish"
	Sushi   = "Sushi"
	Other   = "Other"
)

var turkishKeywords = []string{"türk", "turk", "döner", "doner", "kebab", "istanbul", "ankara", "izmir"}

var sushiKeywords = []string{"sushi", "japan", "ramen", "tokyo", "bento", "asiatisch", "asia"}

// Classify returns the market segment for a restaurant based on its name and
// address text.
func Classify(name, address string) string {
	text := strings.ToLower(name + " " + address)
	for _, kw := range turkishKeywords {
		if strings.Contains(text, kw) {
			return Turkish
		}
	}
	for _, kw := range sushiKeywords {
		if strings.Contains(text, kw) {
			return Sushi
		}
	}
	return Other
}
