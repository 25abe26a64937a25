package ir

import "errors"

var (
	ErrNilValue  = errors.New("property value is nil")
	ErrNotObject = errors.New("not an object")
	ErrIndex     = errors.New("index out of range")
	ErrType      = errors.New("invalid node type")
)
