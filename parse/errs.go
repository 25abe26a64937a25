package parse

import (
	"errors"
	"fmt"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/token"
)

var (
	// ErrParse is wrapped by every structural error. It wraps
	// token.ErrMalformed, as lexical errors do.
	ErrParse = fmt.Errorf("%w: parse error", token.ErrMalformed)

	ErrBadConditional = fmt.Errorf("%w: bad conditional", ErrParse)
	ErrClosed         = errors.New("reader closed")
)
