// Package common defines shared constants and sentinel errors used across
// the stackpick server and CLI. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Catalog errors.
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrEmptyCatalog   = errors.New("empty catalog")
)
