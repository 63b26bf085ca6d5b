package profile

import "errors"

var (
	ErrNotFound = errors.New("profile not found")
	ErrNoFields = errors.New("no fields to update")
)
