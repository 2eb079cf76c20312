// Package domain holds DTOs for check http contracts
package domain

// CheckInput is the input for a diff check run
type CheckInput struct {
	Diff     string   `json:"diff" example:"diff --git a/lib/order.rb b/lib/order.rb"`
	Language string   `json:"language,omitempty" validate:"omitempty,lang_tag" example:"en_US"`
	Symbols  []string `json:"symbols,omitempty" validate:"omitempty,dive,min=1"`
}
