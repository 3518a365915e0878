package nlp

import (
	"strings"
	"unicode"
)

// stopWords never name a player or a team on their own. Question words come
// first: the taggers read a sentence-initial "Which" as a proper noun.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		which what who whom whose how when where why
		a an the and or but of to in at on for by with from about than vs versus
		i me my you your he his him she her they their them it its we us
		this that these those there here
		is are was were be been has have had does do did can could would should will
		many much more most less least top best highest leader leading max
		show tell give list get let know please compare any all every some so far
		season league premier player players team teams club stat stats number total`) {
		stopWords[w] = struct{}{}
	}
}

func isStopWord(w string) bool {
	_, ok := stopWords[strings.ToLower(w)]
	return ok
}

// words splits text into words, keeping inner hyphens and apostrophes
// ("Heung-min", "Haaland's").
func words(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '\''
	})
	out := fields[:0]
	for _, f := range fields {
		if f = strings.Trim(f, "-'"); f != "" {
			out = append(out, f)
		}
	}
	return out
}
