// Package checker runs the per-line pipeline and shapes findings.
//
// A line flows through four stages:
//
//  1. keyword gate: lines missing every only_lines_matching keyword are skipped
//  2. extraction: words are pulled out of the line (see core/tokenize)
//  3. filtering: length, ignored, symbol and whitelist gates (see core/wordfilter)
//  4. classification: survivors are checked against the dictionary
//
// Each word that fails classification becomes one Finding
package checker

import (
	"strings"

	"wordwarden/internal/core/lintrc"
	"wordwarden/internal/core/speller"
	"wordwarden/internal/core/tokenize"
	"wordwarden/internal/core/wordfilter"
)

const (
	// SeverityInfo is the only severity findings carry
	SeverityInfo = "info"

	// Source tags every finding with the producing tool
	Source = "wordwarden"
)

// Dictionary is the spelling surface a check run needs
type Dictionary interface {
	Check(word string) bool
	Suggest(word string, max int) []string
}

// Finding is one probable misspelling at a specific added line.
// Position is the diff review anchor, stamped by the caller when the
// line came out of a parsed patch
type Finding struct {
	Path        string   `json:"path"`
	Line        int      `json:"line"`
	Position    int      `json:"position,omitempty"`
	Severity    string   `json:"severity"`
	Word        string   `json:"word"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
	Source      string   `json:"source"`
}

// Message renders the finding text for word, appending the suggestion
// list when there is one
func Message(word string, sugs []string) string {
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(word)
	b.WriteString(`" might not be spelled correctly.`)
	if len(sugs) > 0 {
		b.WriteString(" Spelling suggestions: ")
		b.WriteString(strings.Join(sugs, ", "))
	}
	return b.String()
}

// CheckLine checks one added line and returns its findings in word
// order. Words repeated on the line produce one finding each
func CheckLine(cfg *lintrc.Config, dict Dictionary, syms wordfilter.Symbols, path string, line int, text string) []Finding {
	if !cfg.LineRelevant(text) {
		return nil
	}

	var out []Finding
	for _, word := range tokenize.Extract(text) {
		if !wordfilter.Lintable(word, cfg, syms) {
			continue
		}
		if !speller.Misspelled(dict, word) {
			continue
		}

		var sugs []string
		if cfg.MaxSuggestions > 0 {
			sugs = dict.Suggest(word, cfg.MaxSuggestions)
		}
		out = append(out, Finding{
			Path:        path,
			Line:        line,
			Severity:    SeverityInfo,
			Word:        word,
			Message:     Message(word, sugs),
			Suggestions: sugs,
			Source:      Source,
		})
	}
	return out
}
