// Package modkit provides module wiring and core deps
package modkit

import (
	"wordwarden/internal/modkit/dictkit"
	"wordwarden/internal/platform/config"
	"wordwarden/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log  logger.Logger
	Cfg  config.Conf
	Dict dictkit.Provider
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for an optional provider
func (d Deps) ZeroOK() bool { return true }
