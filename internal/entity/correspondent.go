package entity

import "github.com/google/uuid"

// Correspondent is a known document sender/receiver with a match pattern.
type Correspondent struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	MatchPattern   string    `json:"match_pattern"`
	MatchAlgorithm string    `json:"match_algorithm"` // AUTO, ANY, ALL, EXACT, REGEX, FUZZY
	Insensitive    bool      `json:"insensitive"`
}

// Category is a flat classification label applied to documents.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}
