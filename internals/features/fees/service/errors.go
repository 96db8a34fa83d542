package service

import "errors"

var (
	// ErrValidation means the request payload fails a business rule
	// (non-positive amount, unknown method, bad status transition).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound means a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict means a uniqueness rule rejected the write.
	ErrConflict = errors.New("conflicting record exists")
)
