package language

import "errors"

// Configuration errors. Any of them aborts registry construction.
var (
	ErrMissingResource   = errors.New("missing language resource")
	ErrInvalidConfig     = errors.New("invalid language config")
	ErrUnknownGrammar    = errors.New("unknown grammar")
	ErrInvalidQuery      = errors.New("invalid highlight query")
	ErrDuplicateLanguage = errors.New("duplicate language name")
)
