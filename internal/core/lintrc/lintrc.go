// Package lintrc resolves checker configuration from a .wordwarden.toml
// document. Every key is optional; absence of the file is not an error and
// yields the defaults, while a file that exists but does not parse is fatal
package lintrc

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Defaults applied when the document omits a key
const (
	DefaultLanguage       = "en_US"
	DefaultSuggestionMode = "fast"
	DefaultMinWordLength  = 5
	DefaultMaxSuggestions = 3

	// DefaultFilePattern scopes checking to one file suffix family unless
	// the document widens it via files_to_lint
	DefaultFilePattern = `\.rb$`
)

// File models the on-disk TOML document
// int pointers distinguish an explicit zero from an omitted key
type File struct {
	Whitelist         []string `toml:"whitelist"`
	FilesToLint       string   `toml:"files_to_lint"`
	IgnoredWords      []string `toml:"ignored_words"`
	OnlyLinesMatching []string `toml:"only_lines_matching"`
	Language          string   `toml:"language"`
	SuggestionMode    string   `toml:"suggestion_mode"`
	MinWordLength     *int     `toml:"min_word_length"`
	MaxWordLength     int      `toml:"max_word_length"`
	MaxSuggestions    *int     `toml:"max_suggestions_number"`
}

// Config is the immutable resolved configuration for one run
// patterns are compiled once here and reused for the run's duration
type Config struct {
	Language       string
	SuggestionMode string
	MinWordLength  int
	MaxWordLength  int // 0 means unbounded
	MaxSuggestions int

	ignored   map[string]struct{}
	whitelist []*regexp.Regexp
	fileRe    *regexp.Regexp
	keywordRe *regexp.Regexp // nil when only_lines_matching is empty
	keywords  []string
}

// Default returns the configuration used when no document exists
func Default() *Config {
	c, err := Resolve(File{})
	if err != nil {
		panic(err) // defaults always compile
	}
	return c
}

// Load reads and resolves the document at path
// a missing file resolves to Default; a broken one returns an error
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("lintrc: read %s: %w", path, err)
	}
	var f File
	if err := toml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("lintrc: parse %s: %w", path, err)
	}
	c, err := Resolve(f)
	if err != nil {
		return nil, fmt.Errorf("lintrc: %s: %w", path, err)
	}
	return c, nil
}

// Resolve applies defaults and compiles the document's patterns
func Resolve(f File) (*Config, error) {
	c := &Config{
		Language:       strings.TrimSpace(f.Language),
		SuggestionMode: strings.TrimSpace(f.SuggestionMode),
		MinWordLength:  DefaultMinWordLength,
		MaxWordLength:  f.MaxWordLength,
		MaxSuggestions: DefaultMaxSuggestions,
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.SuggestionMode == "" {
		c.SuggestionMode = DefaultSuggestionMode
	}
	if f.MinWordLength != nil {
		c.MinWordLength = *f.MinWordLength
	}
	if f.MaxSuggestions != nil {
		c.MaxSuggestions = *f.MaxSuggestions
	}
	if c.MinWordLength < 0 {
		c.MinWordLength = 0
	}
	if c.MaxWordLength < 0 {
		c.MaxWordLength = 0
	}
	if c.MaxSuggestions < 0 {
		c.MaxSuggestions = 0
	}

	pat := strings.TrimSpace(f.FilesToLint)
	if pat == "" {
		pat = DefaultFilePattern
	}
	fileRe, err := regexp.Compile("(?i)" + pat)
	if err != nil {
		return nil, fmt.Errorf("files_to_lint pattern %q: %w", pat, err)
	}
	c.fileRe = fileRe

	for _, w := range f.Whitelist {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + w)
		if err != nil {
			return nil, fmt.Errorf("whitelist pattern %q: %w", w, err)
		}
		c.whitelist = append(c.whitelist, re)
	}

	c.ignored = make(map[string]struct{}, len(f.IgnoredWords))
	for _, w := range f.IgnoredWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			c.ignored[w] = struct{}{}
		}
	}

	// the keyword gate matches the raw line case-sensitively via one unioned
	// pattern, so keywords keep the case they were written in
	for _, k := range f.OnlyLinesMatching {
		if k = strings.TrimSpace(k); k != "" {
			c.keywords = append(c.keywords, k)
		}
	}
	if len(c.keywords) > 0 {
		parts := make([]string, len(c.keywords))
		for i, k := range c.keywords {
			parts[i] = regexp.QuoteMeta(k)
		}
		c.keywordRe = regexp.MustCompile(strings.Join(parts, "|"))
	}

	return c, nil
}

// LintsFile reports whether path is in scope for checking
func (c *Config) LintsFile(path string) bool { return c.fileRe.MatchString(path) }

// LineRelevant reports whether a raw line passes the keyword gate
// with no keywords configured every line is relevant
func (c *Config) LineRelevant(line string) bool {
	return c.keywordRe == nil || c.keywordRe.MatchString(line)
}

// Whitelisted reports whether word matches any whitelist pattern
func (c *Config) Whitelisted(word string) bool {
	for _, re := range c.whitelist {
		if re.MatchString(word) {
			return true
		}
	}
	return false
}

// Ignored reports whether word's lowercase form is in ignored_words
func (c *Config) Ignored(word string) bool {
	_, ok := c.ignored[strings.ToLower(word)]
	return ok
}

// Keywords returns the configured line gate keywords, nil when unset
func (c *Config) Keywords() []string { return c.keywords }
