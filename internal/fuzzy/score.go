// Package fuzzy resolves free text to known player names, stat phrases and
// team names using fuzzywuzzy similarity scores on a 0–100 scale.
package fuzzy

import (
	"strings"

	fuzzywuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// TokenSetScore compares the word sets of a and b after lowercasing and
// replacing punctuation with spaces. A name whose words all appear in the
// other text scores 100.
func TokenSetScore(a, b string) int {
	return fuzzywuzzy.TokenSetRatio(a, b, false, true)
}

// PartialScore scores the shorter string against the best matching window of
// the longer one. Either string blank scores 0.
func PartialScore(a, b string) int {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0
	}
	return fuzzywuzzy.PartialRatio(a, b)
}
