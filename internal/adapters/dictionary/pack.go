package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Pack layout: one directory per language holding a manifest plus
// numbered word chunks, all msgpack encoded. The manifest is written
// last so a directory with one is complete
const (
	manifestName = "manifest.dpk"
	chunkFormat  = "words_%04d.dpk"

	// DefaultChunkWords is the chunk size the packer uses unless told otherwise
	DefaultChunkWords = 25000
)

// Manifest describes a packed dictionary directory
type Manifest struct {
	Language  string    `msgpack:"language"`
	Words     int       `msgpack:"words"`
	Chunks    int       `msgpack:"chunks"`
	ChunkSize int       `msgpack:"chunk_size"`
	CreatedAt time.Time `msgpack:"created_at"`
}

// Chunk is one slice of a packed wordlist, numbered from 1
type Chunk struct {
	Seq   int      `msgpack:"seq"`
	Words []string `msgpack:"words"`
}

// WritePack normalizes words (lowercase, deduped, sorted) and writes
// them under dir as chunks plus a manifest. dir must already exist
func WritePack(dir, lang string, words []string, chunkWords int) (Manifest, error) {
	if chunkWords <= 0 {
		chunkWords = DefaultChunkWords
	}

	seen := make(map[string]struct{}, len(words))
	norm := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		norm = append(norm, w)
	}
	if len(norm) == 0 {
		return Manifest{}, fmt.Errorf("dictionary: pack %s: no words to write", lang)
	}
	sort.Strings(norm)

	chunks := 0
	for start := 0; start < len(norm); start += chunkWords {
		end := start + chunkWords
		if end > len(norm) {
			end = len(norm)
		}
		chunks++

		raw, err := msgpack.Marshal(Chunk{Seq: chunks, Words: norm[start:end]})
		if err != nil {
			return Manifest{}, fmt.Errorf("dictionary: encode chunk %d: %w", chunks, err)
		}
		name := filepath.Join(dir, fmt.Sprintf(chunkFormat, chunks))
		if err := os.WriteFile(name, raw, 0o644); err != nil {
			return Manifest{}, fmt.Errorf("dictionary: write %s: %w", name, err)
		}
	}

	man := Manifest{
		Language:  lang,
		Words:     len(norm),
		Chunks:    chunks,
		ChunkSize: chunkWords,
		CreatedAt: time.Now().UTC(),
	}
	raw, err := msgpack.Marshal(man)
	if err != nil {
		return Manifest{}, fmt.Errorf("dictionary: encode manifest: %w", err)
	}
	name := filepath.Join(dir, manifestName)
	if err := os.WriteFile(name, raw, 0o644); err != nil {
		return Manifest{}, fmt.Errorf("dictionary: write %s: %w", name, err)
	}
	return man, nil
}

// ReadPack loads a packed directory, returning the manifest and the
// full wordlist in chunk order
func ReadPack(dir string) (Manifest, []string, error) {
	raw, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		return Manifest{}, nil, fmt.Errorf("dictionary: read manifest in %s: %w", dir, err)
	}
	var man Manifest
	if err := msgpack.Unmarshal(raw, &man); err != nil {
		return Manifest{}, nil, fmt.Errorf("dictionary: decode manifest in %s: %w", dir, err)
	}

	words := make([]string, 0, man.Words)
	for seq := 1; seq <= man.Chunks; seq++ {
		name := filepath.Join(dir, fmt.Sprintf(chunkFormat, seq))
		raw, err := os.ReadFile(name)
		if err != nil {
			return Manifest{}, nil, fmt.Errorf("dictionary: read %s: %w", name, err)
		}
		var ch Chunk
		if err := msgpack.Unmarshal(raw, &ch); err != nil {
			return Manifest{}, nil, fmt.Errorf("dictionary: decode %s: %w", name, err)
		}
		if ch.Seq != seq {
			return Manifest{}, nil, fmt.Errorf("dictionary: %s: chunk seq %d, want %d", name, ch.Seq, seq)
		}
		words = append(words, ch.Words...)
	}
	if len(words) != man.Words {
		return Manifest{}, nil, fmt.Errorf("dictionary: %s: %d words, manifest says %d", dir, len(words), man.Words)
	}
	return man, words, nil
}
