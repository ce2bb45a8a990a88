package modules

import "errors"

var (
	// ErrDuplicateCoin is returned when two coins share a name (case-insensitive)
	ErrDuplicateCoin = errors.New("duplicate coin")

	// ErrInvalidAttribute is returned when a coin attribute is outside its allowed values
	ErrInvalidAttribute = errors.New("invalid coin attribute")

	// ErrEmptyKnowledgeBase is returned when a knowledge base would hold no coins
	ErrEmptyKnowledgeBase = errors.New("knowledge base is empty")
)
