// Package domain defines the core types and interfaces for the check service
package domain

import "wordwarden/internal/core/checker"

// Input is one spell check request over a unified diff
type Input struct {
	// Diff is the unified diff text to check
	Diff string

	// Language overrides the configured dictionary language when set
	Language string

	// Symbols are extra identifiers treated as known for this run only
	Symbols []string
}

// Stats summarizes one run
type Stats struct {
	Patches   int   `json:"patches"`
	Files     int   `json:"files"`
	Lines     int   `json:"lines"`
	Findings  int   `json:"findings"`
	ElapsedMS int64 `json:"elapsed_ms"`
}

// Report is the outcome of one run. Findings follow patch order, then
// line order within a patch
type Report struct {
	RunID    string            `json:"run_id"`
	Language string            `json:"language"`
	Findings []checker.Finding `json:"findings"`
	Stats    Stats             `json:"stats"`
}
