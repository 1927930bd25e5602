// Package romanize decides whether transcript text needs romanization before
// it is usable by downstream Latin-script tooling.
package romanize

import "unicode"

// threshold is the fraction of letters that must be Perso-Arabic or
// Devanagari before a text counts as Urdu/Hindi.
const threshold = 0.3

// Needed reports whether the text is predominantly written in a script that
// the romanization collaborator should transliterate. Text with no letters at
// all is left alone.
func Needed(text string) bool {
	letters, script := 0, 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.Is(unicode.Arabic, r) || unicode.Is(unicode.Devanagari, r) {
			script++
		}
	}
	if letters == 0 {
		return false
	}
	return float64(script)/float64(letters) > threshold
}
