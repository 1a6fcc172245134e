package service

import "errors"

// Outcome kinds surfaced to the transport layer. Wrapped with %w so callers
// can branch with errors.Is.
var (
	ErrNotFound      = errors.New("not_found")
	ErrValidation    = errors.New("validation_failed")
	ErrStorageWrite  = errors.New("storage_write_failed")
	ErrMetadataWrite = errors.New("metadata_write_failed")
	ErrCompensation  = errors.New("compensation_failed")
)
