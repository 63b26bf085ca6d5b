package alert

import "errors"

var (
	ErrNotFound     = errors.New("alert not found")
	ErrInvalidInput = errors.New("invalid input")
)
