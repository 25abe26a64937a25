package token

import "github.com/DeadZoneLuna/WwisePCKUnpacker/settings"

type tokenOpts struct {
	escapes   bool
	lowercase bool
	maxSize   int
}

type TokenOpt func(*tokenOpts)

func TokenEscapes(v bool) TokenOpt {
	return func(o *tokenOpts) { o.escapes = v }
}

func TokenLowercase(v bool) TokenOpt {
	return func(o *tokenOpts) { o.lowercase = v }
}

// TokenMaxSize bounds the payload length of a single token. Values less
// than 1 mean no bound.
func TokenMaxSize(n int) TokenOpt {
	return func(o *tokenOpts) { o.maxSize = n }
}

// TokenSettings applies the lexical options of s.
func TokenSettings(s settings.Settings) TokenOpt {
	return func(o *tokenOpts) {
		o.escapes = s.UseEscapeSequences
		o.lowercase = s.LowercaseKeys
		o.maxSize = s.MaxTokenSize
	}
}
