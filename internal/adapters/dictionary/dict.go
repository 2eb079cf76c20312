// Package dictionary loads wordlists into an in-memory spelling
// dictionary. Membership lookups go through a patricia trie and
// suggestions come from a symmetric-delete fuzzy model whose edit
// depth is picked by the configured suggestion mode
package dictionary

import (
	"fmt"
	"strings"
	"time"

	"wordwarden/internal/modkit/dictkit"

	"github.com/sajari/fuzzy"
	"github.com/tchap/go-patricia/v2/patricia"
)

// suggestPool is how many candidates the model is asked for before the
// caller's cap and self-matches are applied
const suggestPool = 16

// Dict is one loaded language. It is safe for concurrent readers once
// built; nothing mutates it afterwards
type Dict struct {
	lang     string
	mode     string
	source   string
	words    int
	loadedAt time.Time

	trie  *patricia.Trie
	model *fuzzy.Model
}

// depthFor maps a suggestion mode to the model's edit depth
func depthFor(mode string) (int, error) {
	switch mode {
	case "ultra", "fast":
		return 1, nil
	case "normal":
		return 2, nil
	case "slow", "bad-spellers":
		return 3, nil
	default:
		return 0, fmt.Errorf("dictionary: unknown suggestion mode %q", mode)
	}
}

// New builds a Dict from a wordlist. Words are lowercased and deduped;
// empty entries are dropped
func New(lang, mode, source string, words []string) (*Dict, error) {
	depth, err := depthFor(mode)
	if err != nil {
		return nil, err
	}

	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(depth)
	model.SetUseAutocomplete(false)

	trie := patricia.NewTrie()
	n := 0
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || trie.Get(patricia.Prefix(w)) != nil {
			continue
		}
		trie.Insert(patricia.Prefix(w), true)
		model.TrainWord(w)
		n++
	}
	if n == 0 {
		return nil, fmt.Errorf("dictionary: %s: empty wordlist", lang)
	}

	return &Dict{
		lang:     lang,
		mode:     mode,
		source:   source,
		words:    n,
		loadedAt: time.Now().UTC(),
		trie:     trie,
		model:    model,
	}, nil
}

// Check reports whether word is in the dictionary. Lookups are
// case-insensitive since the wordlist is stored lowercase
func (d *Dict) Check(word string) bool {
	return d.trie.Get(patricia.Prefix(strings.ToLower(word))) != nil
}

// Suggest returns up to max corrections for word, best first. The
// word's own lowercase form is never suggested back
func (d *Dict) Suggest(word string, max int) []string {
	if max <= 0 {
		return nil
	}
	in := strings.ToLower(word)

	pool := max + 1
	if pool < suggestPool {
		pool = suggestPool
	}

	var out []string
	seen := make(map[string]struct{})
	for _, s := range d.model.SpellCheckSuggestions(in, pool) {
		if s == in {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if len(out) == max {
			break
		}
	}
	return out
}

// Info describes the loaded dictionary
func (d *Dict) Info() dictkit.Info {
	return dictkit.Info{
		Language: d.lang,
		Words:    d.words,
		Mode:     d.mode,
		Source:   d.source,
		LoadedAt: d.loadedAt,
	}
}
