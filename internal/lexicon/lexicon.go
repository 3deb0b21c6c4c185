// Package lexicon holds the stateless lexical helpers and the static
// dictionaries shared by the analyzers. Everything here is a pure function or
// an immutable process-wide table; the heuristic constants are calibration
// values and are not meant to be tuned per call.
package lexicon

import (
	"regexp"
	"strings"
)

var vowelGroupPattern = regexp.MustCompile(`[aeiouy]+`)
var nonLetterPattern = regexp.MustCompile(`[^a-z]+`)

// CleanWord lowercases w and strips every non-letter, the form used for
// syllable counting and dictionary matching. Stored token offsets keep the
// original punctuation.
func CleanWord(w string) string {
	return nonLetterPattern.ReplaceAllString(strings.ToLower(w), "")
}

// Syllables estimates the syllable count of a single word: three letters or
// fewer count as one syllable, otherwise each vowel-group run counts once.
func Syllables(word string) int {
	w := CleanWord(word)
	if w == "" {
		return 0
	}
	if len(w) <= 3 {
		return 1
	}
	n := len(vowelGroupPattern.FindAllString(w, -1))
	if n == 0 {
		return 1
	}
	return n
}

// IsComplex reports whether a word carries three or more estimated syllables.
func IsComplex(word string) bool {
	return Syllables(word) >= 3
}

// LastWord returns the cleaned final word of s, or "" for blank input.
func LastWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return CleanWord(fields[len(fields)-1])
}

// RhymeSound returns the tail of the word from its last vowel group onward,
// the slice compared when checking for rhymes.
func RhymeSound(word string) string {
	w := CleanWord(word)
	if w == "" {
		return ""
	}
	locs := vowelGroupPattern.FindAllStringIndex(w, -1)
	if len(locs) == 0 {
		return w
	}
	return w[locs[len(locs)-1][0]:]
}

// Rhymes reports whether two distinct words share a non-empty rhyme sound.
func Rhymes(a, b string) bool {
	ca, cb := CleanWord(a), CleanWord(b)
	if ca == "" || cb == "" || ca == cb {
		return false
	}
	return RhymeSound(ca) == RhymeSound(cb)
}

// SynonymsFor returns alternatives for an overused word, or nil when the
// synonym table has no entry.
func SynonymsFor(word string) []string {
	return synonyms[CleanWord(word)]
}
