// Command wordwarden-dictpack
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"wordwarden/internal/adapters/dictionary"
)

func must(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// collectWordlists walks the inputs and loads every .txt wordlist it finds
func collectWordlists(inputs []string) ([]string, error) {
	var words []string
	for _, in := range inputs {
		st, err := os.Stat(in)
		if err != nil {
			return nil, err
		}
		if !st.IsDir() {
			w, err := dictionary.LoadWordlistFile(in)
			if err != nil {
				return nil, err
			}
			words = append(words, w...)
			continue
		}
		err = filepath.WalkDir(in, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(strings.ToLower(path), ".txt") {
				return nil
			}
			w, err := dictionary.LoadWordlistFile(path)
			if err != nil {
				return err
			}
			words = append(words, w...)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return words, nil
}

func main() {
	var (
		out     = flag.String("out", "", "output pack directory, e.g. ./dicts/en_US")
		lang    = flag.String("lang", "", "language tag to stamp, e.g. en_US")
		chunk   = flag.Int("chunk", dictionary.DefaultChunkWords, "words per chunk")
		check   = flag.String("check", "", "verify an existing pack directory and exit")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *check != "" {
		man, words, err := dictionary.ReadPack(*check)
		must(err)
		fmt.Printf("%s: %d words in %d chunks (created %s)\n",
			man.Language, len(words), man.Chunks, man.CreatedAt.Format(time.RFC3339))
		return
	}

	if *out == "" || *lang == "" {
		must(fmt.Errorf("-out and -lang are required (or -check to verify a pack)"))
	}
	if flag.NArg() == 0 {
		must(fmt.Errorf("no wordlist inputs given (files or directories of .txt)"))
	}

	words, err := collectWordlists(flag.Args())
	must(err)
	if *verbose {
		_, _ = fmt.Fprintf(os.Stderr, "loaded %d raw words from %d inputs\n", len(words), flag.NArg())
	}

	must(os.MkdirAll(*out, 0o755))
	man, err := dictionary.WritePack(*out, *lang, words, *chunk)
	must(err)

	if *verbose {
		_, _ = fmt.Fprintf(os.Stderr, "wrote %s: %d words in %d chunks\n", *out, man.Words, man.Chunks)
	}
}
