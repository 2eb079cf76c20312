// Package symbols collects identifiers that should never be treated as
// prose. Lookups are exact and case-sensitive, matching how the names
// appear in source
package symbols

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"wordwarden/internal/core/tokenize"
)

// DefaultMaxFileSize keeps minified bundles and build artifacts out of
// the catalog
const DefaultMaxFileSize = 1 << 20

var identRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

var defaultExts = []string{
	".go", ".rb", ".py", ".js", ".ts", ".java", ".rs", ".c", ".h", ".cpp",
}

// Catalog is a set of known identifiers. Build it fully before sharing
// across goroutines; reads are lock-free
type Catalog struct {
	words map[string]struct{}
	files int
}

// New returns an empty catalog
func New() *Catalog {
	return &Catalog{words: make(map[string]struct{})}
}

// FromList builds a catalog from explicit identifiers
func FromList(words []string) *Catalog {
	c := New()
	c.Add(words...)
	return c
}

// Add inserts identifiers, skipping blanks
func (c *Catalog) Add(words ...string) {
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			c.words[w] = struct{}{}
		}
	}
}

// Contains reports whether word is a known identifier
func (c *Catalog) Contains(word string) bool {
	if c == nil {
		return false
	}
	_, ok := c.words[word]
	return ok
}

// Len is the number of distinct identifiers collected
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.words)
}

// FilesScanned is how many files contributed identifiers
func (c *Catalog) FilesScanned() int {
	if c == nil {
		return 0
	}
	return c.files
}

// ScanReader collects every identifier token from r. Each identifier
// also contributes its snake_case and camelCase sub-words, since prose
// checks look words up after decomposition
func (c *Catalog) ScanReader(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for sc.Scan() {
		for _, id := range identRe.FindAllString(sc.Text(), -1) {
			c.words[id] = struct{}{}
			for _, seg := range strings.Split(id, "_") {
				for _, part := range tokenize.SplitIdentifier(seg) {
					c.words[part] = struct{}{}
				}
			}
		}
	}
	return sc.Err()
}

// ScanDir walks dir and collects identifiers from source files.
// exts filters by extension (defaults cover common source languages),
// maxFile skips anything larger, dot-directories are never entered.
// Unreadable files are skipped rather than failing the scan
func ScanDir(dir string, exts []string, maxFile int64) (*Catalog, error) {
	if maxFile <= 0 {
		maxFile = DefaultMaxFileSize
	}
	want := extSet(exts)

	c := New()
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := want[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}
		if info, err := d.Info(); err != nil || info.Size() > maxFile {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return nil
		}
		defer f.Close()

		if err := c.ScanReader(f); err != nil {
			return nil
		}
		c.files++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("symbols: scan %s: %w", dir, err)
	}
	return c, nil
}

func extSet(exts []string) map[string]struct{} {
	if len(exts) == 0 {
		exts = defaultExts
	}
	set := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = struct{}{}
	}
	return set
}
