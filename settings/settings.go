// Package settings holds the configuration shared by the reader and the
// writer.
//
// A [Settings] is a plain value. Readers and writers copy it on
// construction and never change it, so one value may be shared by any
// number of concurrent parses and encodes.
//
// Two profiles are provided:
//
//   - [Default]: keys and values are taken literally, backslashes are
//     not interpreted, conditionals are evaluated.
//   - [Common]: like Default but with lowercase folding and escape
//     sequences enabled.  This is the profile used when none is given.
package settings

import (
	"fmt"
)

// DefaultMaxTokenSize bounds the byte length of a single quoted run.
const DefaultMaxTokenSize = 4096

type Settings struct {
	// IgnoreRootToken makes the reader treat the whole input as the body
	// of an object with no enclosing key.
	IgnoreRootToken bool
	// LowercaseKeys folds every key and value to lowercase while reading.
	LowercaseKeys bool
	// UseEscapeSequences enables translation of \n, \t and friends in
	// both directions.
	UseEscapeSequences bool
	// UseConditionals enables evaluation of [$PLATFORM] suffixes.
	UseConditionals bool
	MaxTokenSize    int

	Platform Platform
}

// Default returns the literal profile.
func Default() Settings {
	return Settings{
		UseConditionals: true,
		MaxTokenSize:    DefaultMaxTokenSize,
		Platform:        Windows(),
	}
}

// Common returns the profile used when callers do not choose one.
func Common() Settings {
	s := Default()
	s.LowercaseKeys = true
	s.UseEscapeSequences = true
	return s
}

// Profile returns the named profile, "default" or "common".
func Profile(name string) (Settings, error) {
	switch name {
	case "default":
		return Default(), nil
	case "common", "":
		return Common(), nil
	}
	return Settings{}, fmt.Errorf("%w: unknown profile %q", ErrInvalid, name)
}

func (s Settings) Validate() error {
	if s.MaxTokenSize <= 0 {
		return fmt.Errorf("%w: maxTokenSize must be positive, got %d", ErrInvalid, s.MaxTokenSize)
	}
	return s.Platform.Validate()
}

func (s Settings) WithPlatform(p Platform) Settings {
	s.Platform = p
	return s
}
