package repository

import "errors"

var (
	// ErrNotFound: no record matched the key or filter.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate: a unique constraint rejected the write.
	ErrDuplicate = errors.New("duplicate record")
)
