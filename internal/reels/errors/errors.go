package errors

import "errors"

var (
	ErrNotFound = errors.New("reel not found")
)
