// Package speller classifies words against a dictionary lookup
package speller

import "strings"

// Dictionary is the lookup surface classification needs
type Dictionary interface {
	Check(word string) bool
}

// Singularize derives the single alternate form tried before a word is
// called misspelled. Exactly one suffix is stripped, trying in order a
// trailing digit run, then "es", then "s". Words with none of those
// come back unchanged
func Singularize(word string) string {
	if i := trailingDigitStart(word); i < len(word) {
		return word[:i]
	}
	if strings.HasSuffix(word, "es") {
		return word[:len(word)-2]
	}
	if strings.HasSuffix(word, "s") {
		return word[:len(word)-1]
	}
	return word
}

// Misspelled reports whether neither word nor its singularized form is
// known to d
func Misspelled(d Dictionary, word string) bool {
	if d.Check(word) {
		return false
	}
	if alt := Singularize(word); alt != word && d.Check(alt) {
		return false
	}
	return true
}

func trailingDigitStart(word string) int {
	i := len(word)
	for i > 0 && word[i-1] >= '0' && word[i-1] <= '9' {
		i--
	}
	return i
}
