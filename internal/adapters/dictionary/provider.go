package dictionary

import (
	"bufio"
	"context"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"wordwarden/internal/modkit/dictkit"

	"golang.org/x/text/language"
)

//go:embed seeds/*.txt
var seedFS embed.FS

// Provider resolves language tags to loaded dictionaries. Packed
// wordlists under dir win; languages only the embedded seeds know fall
// back to those. Wrap it in dictkit.Cached to load each language once
type Provider struct {
	dir  string
	mode string
}

// NewProvider returns a Provider reading packs from dir, which may be
// empty to serve embedded seeds only. mode picks the suggestion depth
// and is validated at load time
func NewProvider(dir, mode string) *Provider {
	return &Provider{dir: dir, mode: mode}
}

// Languages lists every loadable language tag, sorted
func (p *Provider) Languages() []string {
	set := make(map[string]struct{})

	if entries, err := seedFS.ReadDir("seeds"); err == nil {
		for _, e := range entries {
			if name, ok := strings.CutSuffix(e.Name(), ".txt"); ok {
				set[name] = struct{}{}
			}
		}
	}

	if p.dir != "" {
		if entries, err := os.ReadDir(p.dir); err == nil {
			for _, e := range entries {
				if !e.IsDir() {
					continue
				}
				if _, err := os.Stat(filepath.Join(p.dir, e.Name(), manifestName)); err == nil {
					set[e.Name()] = struct{}{}
				}
			}
		}
	}

	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Dictionary loads the best match for lang
func (p *Provider) Dictionary(ctx context.Context, lang string) (dictkit.Dictionary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name, err := p.match(lang)
	if err != nil {
		return nil, err
	}

	if p.dir != "" {
		packDir := filepath.Join(p.dir, name)
		if _, err := os.Stat(filepath.Join(packDir, manifestName)); err == nil {
			_, words, err := ReadPack(packDir)
			if err != nil {
				return nil, err
			}
			return New(name, p.mode, "pack:"+packDir, words)
		}
	}

	words, err := seedWords(name)
	if err != nil {
		return nil, err
	}
	return New(name, p.mode, "embedded", words)
}

// match picks the available tag closest to lang, accepting both the
// BCP-47 spelling and the underscore one dictionaries ship with
func (p *Provider) match(lang string) (string, error) {
	want, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("dictionary: language %q: %w", lang, err)
	}

	avail := p.Languages()
	if len(avail) == 0 {
		return "", fmt.Errorf("dictionary: no dictionaries available")
	}

	names := make([]string, 0, len(avail))
	tags := make([]language.Tag, 0, len(avail))
	for _, a := range avail {
		t, err := language.Parse(strings.ReplaceAll(a, "_", "-"))
		if err != nil {
			continue
		}
		names = append(names, a)
		tags = append(tags, t)
	}
	if len(tags) == 0 {
		return "", fmt.Errorf("dictionary: no parseable dictionary tags")
	}

	_, i, conf := language.NewMatcher(tags).Match(want)
	if conf == language.No {
		return "", fmt.Errorf("dictionary: no dictionary for language %q (have %s)", lang, strings.Join(avail, ", "))
	}
	return names[i], nil
}

func seedWords(name string) ([]string, error) {
	f, err := seedFS.Open("seeds/" + name + ".txt")
	if err != nil {
		return nil, fmt.Errorf("dictionary: no embedded seed for %s", name)
	}
	defer f.Close()

	words, err := parseWordlist(f)
	if err != nil {
		return nil, fmt.Errorf("dictionary: seed %s: %w", name, err)
	}
	return words, nil
}

// parseWordlist reads one word per line, skipping blanks and # comments
func parseWordlist(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	var words []string
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words = append(words, w)
	}
	return words, sc.Err()
}

// LoadWordlistFile reads a plain one-word-per-line file, the input
// format the packer consumes
func LoadWordlistFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open wordlist %s: %w", path, err)
	}
	defer f.Close()

	words, err := parseWordlist(f)
	if err != nil {
		return nil, fmt.Errorf("dictionary: read wordlist %s: %w", path, err)
	}
	return words, nil
}
