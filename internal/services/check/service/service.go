// Package service implements the check service
package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"wordwarden/internal/adapters/diff"
	"wordwarden/internal/adapters/symbols"
	"wordwarden/internal/core/checker"
	"wordwarden/internal/core/lintrc"
	"wordwarden/internal/core/wordfilter"
	"wordwarden/internal/modkit/dictkit"
	perr "wordwarden/internal/platform/errors"
	"wordwarden/internal/platform/logger"
	"wordwarden/internal/services/check/domain"

	"github.com/google/uuid"
)

// Config for the check service
type Config struct {
	ConfigPath     string
	Workers        int
	SymbolsDir     string
	SymbolsExts    []string
	SymbolsMaxFile int64
}

// Service implements domain.CheckerPort
type Service struct {
	dict dictkit.Provider
	cfg  Config

	rcOnce sync.Once
	rc     *lintrc.Config
	rcErr  error

	symOnce sync.Once
	syms    *symbols.Catalog
	symErr  error
}

// New constructs a new check service
func New(provider dictkit.Provider, cfg Config) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Service{dict: provider, cfg: cfg}
}

// CheckDiff parses the diff and spell checks every added line of every
// file the configuration puts in scope. Findings come back in patch
// order, then line order, regardless of worker count
func (s *Service) CheckDiff(ctx context.Context, in domain.Input) (domain.Report, error) {
	started := time.Now()
	runID := uuid.NewString()
	ctx = logger.WithRun(ctx, runID)
	log := logger.C(ctx)

	rc, err := s.lintrc(ctx)
	if err != nil {
		return domain.Report{}, err
	}

	patches, err := diff.Parse(strings.NewReader(in.Diff))
	if err != nil {
		return domain.Report{}, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "parse diff")
	}

	lang := in.Language
	if lang == "" {
		lang = rc.Language
	}
	dict, err := s.dict.Dictionary(ctx, lang)
	if err != nil {
		return domain.Report{}, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "resolve dictionary")
	}

	base, err := s.symbolCatalog(ctx)
	if err != nil {
		return domain.Report{}, err
	}
	var syms wordfilter.Symbols = base
	if len(in.Symbols) > 0 {
		syms = union{a: base, b: symbols.FromList(in.Symbols)}
	}

	type result struct {
		findings []checker.Finding
		lines    int
		scoped   bool
	}
	out := make([]result, len(patches))

	sem := make(chan struct{}, s.cfg.Workers)
	wg := sync.WaitGroup{}

	for i := range patches {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			p := patches[i]
			if p.NewPath == "" || len(p.Added) == 0 || !rc.LintsFile(p.NewPath) {
				return
			}
			out[i].scoped = true
			for _, al := range p.Added {
				out[i].lines++
				fs := checker.CheckLine(rc, dict, syms, p.NewPath, al.Line, al.Content)
				for j := range fs {
					fs[j].Position = al.Position
				}
				out[i].findings = append(out[i].findings, fs...)
			}
		}(i)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return domain.Report{}, err
	}

	findings := make([]checker.Finding, 0, 8)
	files, lines := 0, 0
	for i := range out {
		if out[i].scoped {
			files++
		}
		lines += out[i].lines
		findings = append(findings, out[i].findings...)
	}

	rep := domain.Report{
		RunID:    runID,
		Language: lang,
		Findings: findings,
		Stats: domain.Stats{
			Patches:   len(patches),
			Files:     files,
			Lines:     lines,
			Findings:  len(findings),
			ElapsedMS: time.Since(started).Milliseconds(),
		},
	}

	log.Info().
		Str("language", lang).
		Int("patches", rep.Stats.Patches).
		Int("files", rep.Stats.Files).
		Int("lines", rep.Stats.Lines).
		Int("findings", rep.Stats.Findings).
		Int64("elapsed_ms", rep.Stats.ElapsedMS).
		Msg("check complete")

	return rep, nil
}

// lintrc loads the configuration once and reuses it for every run
func (s *Service) lintrc(ctx context.Context) (*lintrc.Config, error) {
	s.rcOnce.Do(func() {
		s.rc, s.rcErr = lintrc.Load(s.cfg.ConfigPath)
		if s.rcErr != nil {
			s.rcErr = perr.Wrap(s.rcErr, perr.ErrorCodeUnknown, "load lint config")
			return
		}
		logger.C(ctx).Debug().
			Str("path", s.cfg.ConfigPath).
			Str("language", s.rc.Language).
			Str("mode", s.rc.SuggestionMode).
			Msg("lint config loaded")
	})
	return s.rc, s.rcErr
}

// symbolCatalog scans the symbols directory once, if one is configured
func (s *Service) symbolCatalog(ctx context.Context) (*symbols.Catalog, error) {
	s.symOnce.Do(func() {
		if s.cfg.SymbolsDir == "" {
			return
		}
		s.syms, s.symErr = symbols.ScanDir(s.cfg.SymbolsDir, s.cfg.SymbolsExts, s.cfg.SymbolsMaxFile)
		if s.symErr != nil {
			s.symErr = perr.Wrap(s.symErr, perr.ErrorCodeUnknown, "scan symbols")
			return
		}
		logger.C(ctx).Info().
			Str("dir", s.cfg.SymbolsDir).
			Int("files", s.syms.FilesScanned()).
			Int("identifiers", s.syms.Len()).
			Msg("symbol catalog ready")
	})
	return s.syms, s.symErr
}

// union joins the scanned catalog with per-run extras
type union struct{ a, b wordfilter.Symbols }

func (u union) Contains(word string) bool {
	return (u.a != nil && u.a.Contains(word)) || (u.b != nil && u.b.Contains(word))
}
