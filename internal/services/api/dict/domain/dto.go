// Package domain holds DTOs for dictionary http contracts
package domain

// LookupInput is the input for a single word lookup
type LookupInput struct {
	Word           string `json:"word" validate:"required,min=1,max=128" example:"recieve"`
	Language       string `json:"language,omitempty" validate:"omitempty,lang_tag" example:"en_US"`
	MaxSuggestions int    `json:"max_suggestions,omitempty" validate:"omitempty,min=1,max=25" example:"3"`
}

// LookupResult reports whether a word is known and what it might have meant
type LookupResult struct {
	Word        string   `json:"word" example:"recieve"`
	Language    string   `json:"language" example:"en_US"`
	Found       bool     `json:"found" example:"false"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// InfoResponse describes a resolved dictionary and the available languages
type InfoResponse struct {
	Language  string   `json:"language" example:"en_US"`
	Words     int      `json:"words" example:"880"`
	Mode      string   `json:"mode" example:"fast"`
	Source    string   `json:"source" example:"embedded"`
	LoadedAt  string   `json:"loaded_at" example:"2026-08-23T13:00:00Z"`
	Languages []string `json:"languages"`
}
