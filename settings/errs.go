package settings

import "errors"

var (
	ErrInvalid       = errors.New("invalid settings")
	ErrUnknownFormat = errors.New("unknown settings format")
)
