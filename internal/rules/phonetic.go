package rules

import (
	"strings"
	"unicode"
)

// Rhymes reports whether two answers rhyme, comparing the phonetic tail
// (the "rime") of each answer's last word: lowercase, letters only, from
// the start of the final stressed vowel run to the end. A trailing silent
// 'e' anchors the rime at the vowel before it, so LATE/KATE agree while
// KATE/CAT diverge. Identical words rhyme trivially, so the canonical
// answer always passes its own RHYME category.
func Rhymes(a, b string) bool {
	ra, rb := rime(a), rime(b)
	if ra == "" || rb == "" {
		return false
	}
	return ra == rb
}

func rime(answer string) string {
	word := lastWord(answer)
	if word == "" {
		return ""
	}

	runes := []rune(word)
	n := len(runes)

	i := n - 1
	if n >= 3 && runes[n-1] == 'e' && !isVowel(runes[n-2]) && isVowel(runes[n-3]) {
		// Vowel-consonant-silent-e tail: rime starts at that vowel.
		i = n - 3
	} else {
		for i >= 0 && !isVowel(runes[i]) {
			i--
		}
		if i < 0 {
			// No vowel at all; compare the whole word.
			return string(runes)
		}
	}

	// Extend left through the vowel run.
	for i > 0 && isVowel(runes[i-1]) {
		i--
	}
	return string(runes[i:])
}

func lastWord(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		} else if b.Len() > 0 {
			b.WriteByte(' ')
		}
	}
	fields := strings.Fields(b.String())
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
