// Package tokenize extracts spellable words from changed lines.
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFC normalization
// 3 Scan maximal ASCII alphanumeric runs, dropping any run that mixes in a digit
// 4 Split surviving runs on camelCase and acronym boundaries
// 5 Deduplicate preserving first occurrence
package tokenize

import (
	"strings"
	"sync"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// pool of fresh NFC transformers
var nfcPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFC)
	},
}

// nfc returns the canonical composed form of s
func nfc(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := nfcPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	nfcPool.Put(tr)
	if err != nil {
		return s
	}
	return ns
}

// Extract returns the spellable words of content, deduplicated in
// first-occurrence order. Case is preserved so downstream filters can
// distinguish identifiers from prose
func Extract(content string) []string {
	s := nfc(content)
	if s == "" {
		return nil
	}

	var out []string
	var seen map[string]struct{}
	for _, run := range letterRuns(s) {
		for _, w := range SplitIdentifier(run) {
			if seen == nil {
				seen = make(map[string]struct{}, 8)
			}
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}

// letterRuns scans s for maximal ASCII alphanumeric runs and keeps only the
// all-letter ones. A run mixing digits and letters, like utf8, cannot be
// split cleanly and is dropped whole
func letterRuns(s string) []string {
	var runs []string
	start := -1
	hasDigit := false
	flush := func(end int) {
		if start >= 0 && !hasDigit {
			runs = append(runs, s[start:end])
		}
		start, hasDigit = -1, false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			if start < 0 {
				start = i
			}
		case c >= '0' && c <= '9':
			if start < 0 {
				start = i
			}
			hasDigit = true
		default:
			flush(i)
		}
	}
	flush(len(s))
	return runs
}

// character classes for boundary decisions
type charClass uint8

const (
	classOther charClass = iota
	classLower
	classUpper
	classDigit
)

func classOf(c byte) charClass {
	switch {
	case c >= 'a' && c <= 'z':
		return classLower
	case c >= 'A' && c <= 'Z':
		return classUpper
	case c >= '0' && c <= '9':
		return classDigit
	}
	return classOther
}

// SplitIdentifier splits one ASCII identifier segment into sub-words.
// A boundary is inserted
//   - between a lowercase letter or digit and a following uppercase letter
//   - before a digit run that follows a non-digit
//   - between an uppercase letter and a following uppercase+lowercase pair,
//     so an embedded acronym stays whole: HTMLTricks -> HTML, Tricks
//
// Callers split on non-alphanumeric characters first; Extract does this via
// its run scanner
func SplitIdentifier(ident string) []string {
	if ident == "" {
		return nil
	}
	var parts []string
	start := 0
	for i := 1; i < len(ident); i++ {
		prev, cur := classOf(ident[i-1]), classOf(ident[i])
		boundary := false
		switch {
		case (prev == classLower || prev == classDigit) && cur == classUpper:
			boundary = true
		case prev != classDigit && cur == classDigit:
			boundary = true
		case prev == classUpper && cur == classUpper && i+1 < len(ident) && classOf(ident[i+1]) == classLower:
			boundary = true
		}
		if boundary {
			parts = append(parts, ident[start:i])
			start = i
		}
	}
	parts = append(parts, ident[start:])
	return parts
}
