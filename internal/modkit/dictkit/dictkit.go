// Package dictkit provides common seams for dictionary backed components
package dictkit

import (
	"context"
	"time"
)

// Dictionary is the spell surface modules consume
type Dictionary interface {
	// Check reports whether word is spelled correctly
	Check(word string) bool
	// Suggest returns up to max corrections for word, best first
	Suggest(word string, max int) []string
	// Info describes the loaded dictionary
	Info() Info
}

// Provider resolves loaded dictionaries by language tag like en_US
type Provider interface {
	// Dictionary returns the dictionary serving lang
	Dictionary(ctx context.Context, lang string) (Dictionary, error)
	// Languages lists the tags the provider can serve
	Languages() []string
}

// Info describes a loaded dictionary
type Info struct {
	Language string    `json:"language"`
	Words    int       `json:"words"`
	Mode     string    `json:"mode"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loaded_at"`
}
