package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrUnexpectedNode    = errors.New("unexpected parse node")
	ErrUnknownUnit       = errors.New("unknown unit")
	ErrInvalidCatalog    = errors.New("invalid unit catalog")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrUnknownStartRule  = errors.New("unknown start rule")
	ErrUnknownOutputKind = errors.New("unknown output format")
	ErrNotFound          = errors.New("not found")
)
