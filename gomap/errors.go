package gomap

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupported = errors.New("unsupported value")
	ErrDepth       = errors.New("maximum depth exceeded")
	ErrShape       = errors.New("bad shape")
)

// MarshalError represents an error during mapping
type MarshalError struct {
	FieldPath string // member path, e.g. "Bank.Events[2]"
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// ShapeError is returned when a multi-array tree does not match its
// recorded shape.
type ShapeError struct {
	Path    string
	Message string
}

func (e *ShapeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("shape error at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("shape error: %s", e.Message)
}

func (e *ShapeError) Unwrap() error {
	return ErrShape
}
