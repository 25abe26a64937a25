package parse

import (
	"github.com/DeadZoneLuna/WwisePCKUnpacker/settings"
)

type parseOpts struct {
	settings settings.Settings
	comments bool
	logf     func(string, ...any)
}

type ParseOption func(*parseOpts)

// WithSettings selects the grammar options. The default is
// settings.Common().
func WithSettings(s settings.Settings) ParseOption {
	return func(o *parseOpts) { o.settings = s }
}

// ParseComments keeps comments found inside objects as comment nodes.
// Comments outside the root are always dropped.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// ParseLogger receives a message for every property dropped by a
// conditional.
func ParseLogger(f func(format string, args ...any)) ParseOption {
	return func(o *parseOpts) { o.logf = f }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{settings: settings.Common()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
