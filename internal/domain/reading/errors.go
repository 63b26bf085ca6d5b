package reading

import "errors"

var (
	ErrNotFound = errors.New("no readings")
	ErrNoData   = errors.New("no sensor data supplied")
)
