// Command wordwarden-lint
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"wordwarden/internal/adapters/dictionary"
	"wordwarden/internal/core/lintrc"
	"wordwarden/internal/modkit"
	"wordwarden/internal/modkit/dictkit"
	"wordwarden/internal/modkit/module"
	"wordwarden/internal/platform/config"
	"wordwarden/internal/platform/logger"

	checkdom "wordwarden/internal/services/check/domain"
	checkmod "wordwarden/internal/services/check/module"
)

func must(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func mustSetEnv(k, v string) {
	if v != "" {
		_ = os.Setenv(k, v)
	}
}

func readDiff(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func main() {
	var (
		diffPath = flag.String("diff", "-", "unified diff file or '-' for stdin")
		cfgPath  = flag.String("config", "", "lint config path (default .wordwarden.toml)")
		format   = flag.String("format", "text", "output format: text or json")
		dictDir  = flag.String("dict-dir", "", "directory with dictionary packs")
		lang     = flag.String("lang", "", "language override, e.g. en_US")
		mode     = flag.String("mode", "", "suggestion mode override (ultra fast normal slow bad-spellers)")
		workers  = flag.Int("workers", 0, "concurrency (>=1)")
		symbols  = flag.String("symbols", "", "source directory to harvest code symbols from")
		quiet    = flag.Bool("quiet", false, "suppress the summary line and most logs")
	)
	flag.Parse()

	if *format != "text" && *format != "json" {
		must(fmt.Errorf("unknown -format %q (want text or json)", *format))
	}

	// keep stdout clean for findings
	if *quiet {
		_ = os.Setenv("LOG_LEVEL", "error")
	} else if os.Getenv("LOG_LEVEL") == "" {
		_ = os.Setenv("LOG_LEVEL", "warn")
	}
	l := logger.Get()

	// Pass CLI flags into CORE_CHECK_* so the module can read its own config
	mustSetEnv("CORE_CHECK_CONFIG_PATH", *cfgPath)
	mustSetEnv("CORE_CHECK_DICT_DIR", *dictDir)
	mustSetEnv("CORE_CHECK_SYMBOLS_DIR", *symbols)
	if *workers > 0 {
		mustSetEnv("CORE_CHECK_WORKERS", strconv.Itoa(*workers))
	}

	root := config.New()
	opts := checkmod.FromConfig(root)

	rc, err := lintrc.Load(opts.ConfigPath)
	must(err)
	sugMode := rc.SuggestionMode
	if *mode != "" {
		sugMode = *mode
	}

	provider := dictkit.Cached(dictionary.NewProvider(opts.DictDir, sugMode))

	deps := modkit.Deps{Cfg: root, Log: *l, Dict: provider}
	cm := checkmod.New(deps, checkmod.Options{})
	module.Register(cm.Name(), cm.Ports())

	diff, err := readDiff(*diffPath)
	must(err)

	checker := module.MustPortsOf[checkmod.Ports](cm).Checker
	rep, err := checker.CheckDiff(context.Background(), checkdom.Input{Diff: diff, Language: *lang})
	must(err)

	switch *format {
	case "json":
		enc, err := json.MarshalIndent(rep, "", "  ")
		must(err)
		_, _ = os.Stdout.Write(enc)
		_, _ = os.Stdout.WriteString("\n")
	default:
		for _, f := range rep.Findings {
			fmt.Printf("%s:%d: %s\n", f.Path, f.Line, f.Message)
		}
	}

	if !*quiet {
		_, _ = fmt.Fprintf(os.Stderr, "%d findings in %d files (%d patches, %d added lines, %dms)\n",
			rep.Stats.Findings, rep.Stats.Files, rep.Stats.Patches, rep.Stats.Lines, rep.Stats.ElapsedMS)
	}
}
