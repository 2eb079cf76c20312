// Package module implements the check module
package module

import (
	"net/http"

	"wordwarden/internal/modkit"
	"wordwarden/internal/modkit/httpkit"
	"wordwarden/internal/services/check/domain"
	"wordwarden/internal/services/check/service"
)

// Ports exposed by the check module
type Ports struct {
	Checker domain.CheckerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new check module
func New(deps modkit.Deps, overrides Options) *Module {
	if deps.Dict == nil {
		panic("check module: Deps.Dict required")
	}

	// Merge config + overrides
	cfg := FromConfig(deps.Cfg)
	if overrides.ConfigPath != "" {
		cfg.ConfigPath = overrides.ConfigPath
	}
	if overrides.Workers != 0 {
		cfg.Workers = overrides.Workers
	}
	if overrides.SymbolsDir != "" {
		cfg.SymbolsDir = overrides.SymbolsDir
	}
	if len(overrides.SymbolsExts) != 0 {
		cfg.SymbolsExts = overrides.SymbolsExts
	}
	if overrides.SymbolsMaxFile != 0 {
		cfg.SymbolsMaxFile = overrides.SymbolsMaxFile
	}

	svc := service.New(deps.Dict, service.Config{
		ConfigPath:     cfg.ConfigPath,
		Workers:        cfg.Workers,
		SymbolsDir:     cfg.SymbolsDir,
		SymbolsExts:    cfg.SymbolsExts,
		SymbolsMaxFile: cfg.SymbolsMaxFile,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Checker: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "check" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares satisfies modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(_ httpkit.Router) {}
