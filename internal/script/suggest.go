package script

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Suggest returns the known verb closest to word, or "" when nothing is
// close. Abbreviations ("st", "err") match as a subsequence of a verb;
// padded typos ("logg", "ennd") match when a verb is a subsequence of
// the word.
func Suggest(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return ""
	}
	names := make([]string, len(Verbs))
	for i, v := range Verbs {
		names[i] = string(v)
	}
	if matches := fuzzy.Find(word, names); len(matches) > 0 {
		return matches[0].Str
	}
	best, bestScore := "", 0
	for _, name := range names {
		m := fuzzy.Find(name, []string{word})
		if len(m) > 0 && (best == "" || m[0].Score > bestScore) {
			best, bestScore = name, m[0].Score
		}
	}
	return best
}
