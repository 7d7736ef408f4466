package domain

import "errors"

var (
	// ErrSourceUnavailable means live vocabulary generation failed or is not configured
	ErrSourceUnavailable = errors.New("vocabulary source unavailable")

	// ErrImportInvalid means an import produced no usable entries
	ErrImportInvalid = errors.New("import invalid")

	// ErrStorageCorrupt means the persisted blob could not be decoded
	ErrStorageCorrupt = errors.New("storage corrupt")

	// ErrInsufficientVocabulary means a set is too small to start a round
	ErrInsufficientVocabulary = errors.New("insufficient vocabulary")

	ErrUnknownMode     = errors.New("unknown game mode")
	ErrInvalidLevel    = errors.New("hsk level must be between 1 and 9")
	ErrEmptySetName    = errors.New("set name cannot be empty")
	ErrSetNotFound     = errors.New("vocabulary set not found")
	ErrCardNotFound    = errors.New("card not found")
	ErrCardMatched     = errors.New("card already matched")
	ErrMismatchPending = errors.New("mismatch is still being displayed")
)
