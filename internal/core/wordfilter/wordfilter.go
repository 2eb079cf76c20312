// Package wordfilter decides which extracted words proceed to spell
// classification. Gates run in a fixed order and a word must clear all
// of them: length bounds, ignored words, known symbols, whitelist
package wordfilter

import (
	"wordwarden/internal/core/lintrc"
)

// Symbols reports identifiers collected from the surrounding codebase.
// Lookups are exact and case-sensitive; a nil Symbols knows nothing
type Symbols interface {
	Contains(word string) bool
}

// Lintable reports whether word survives every gate
func Lintable(word string, cfg *lintrc.Config, syms Symbols) bool {
	n := len(word)
	if n < cfg.MinWordLength {
		return false
	}
	if cfg.MaxWordLength > 0 && n > cfg.MaxWordLength {
		return false
	}
	if cfg.Ignored(word) {
		return false
	}
	if syms != nil && syms.Contains(word) {
		return false
	}
	if cfg.Whitelisted(word) {
		return false
	}
	return true
}

// Filter returns the words that survive the gates, preserving order
func Filter(words []string, cfg *lintrc.Config, syms Symbols) []string {
	var out []string
	for _, w := range words {
		if Lintable(w, cfg, syms) {
			out = append(out, w)
		}
	}
	return out
}
