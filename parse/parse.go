package parse

import (
	"bytes"
	"fmt"
	"io"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/debug"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
)

// Parse parses a document. Unless the settings ignore the root token, the
// result is the root property; otherwise it is a property with an empty
// key holding the object read up to the end of input.
//
// On error the result is nil.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return ParseReader(bytes.NewReader(d), opts...)
}

// ParseReader is like Parse but reads from r. It does not close r.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	o := newParseOpts(opts)
	if err := o.settings.Validate(); err != nil {
		return nil, err
	}
	p := &parser{
		r:    NewReader(r, o.settings),
		opts: o,
	}
	if o.settings.UseConditionals {
		p.conds = newCondEval(o.settings.Platform)
	}
	res, err := p.parseDoc()
	if err != nil {
		return nil, err
	}
	return res, nil
}

type parser struct {
	r     *Reader
	opts  *parseOpts
	conds *condEval

	// back marks the current token as not yet consumed.
	back bool
}

func (p *parser) advance() (bool, error) {
	if p.back {
		p.back = false
		return p.r.State() != StateFinished, nil
	}
	ok, err := p.r.ReadToken()
	if debug.Parse() && err == nil {
		debug.Logf("%s %s %q\n", p.r.Pos(), p.r.State(), p.r.Value())
	}
	return ok, err
}

func (p *parser) unread() {
	p.back = true
}

func (p *parser) parseDoc() (*ir.Node, error) {
	if p.opts.settings.IgnoreRootToken {
		obj, err := p.parseBody(true)
		if err != nil {
			return nil, err
		}
		return ir.Prop("", obj), nil
	}
	var root *ir.Node
	for {
		ok, err := p.advance()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		switch p.r.State() {
		case StateComment:
			continue
		case StateProperty:
			if root != nil {
				return nil, fmt.Errorf("%w: trailing data %q at %s", ErrParse, p.r.Value(), p.r.Pos())
			}
			// The root is kept whatever its conditional says.
			prop, _, err := p.parseProperty()
			if err != nil {
				return nil, err
			}
			root = prop
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %s", ErrParse, p.r.Value(), p.r.Pos())
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: empty document", ErrParse)
	}
	return root, nil
}

// parseProperty parses the property whose key is the current token. It
// reports whether the property survives its conditionals.
func (p *parser) parseProperty() (*ir.Node, bool, error) {
	key := p.r.Value()
	keyPos := p.r.Pos()
	keep := true
	var val *ir.Node
	for val == nil {
		ok, err := p.advance()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, fmt.Errorf("%w: missing value for %q at %s", ErrParse, key, keyPos)
		}
		switch p.r.State() {
		case StateComment:
			continue
		case StateConditional:
			k, err := p.cond()
			if err != nil {
				return nil, false, err
			}
			keep = keep && k
		case StateProperty:
			val = ir.FromString(p.r.Value())
		case StateObject:
			if p.r.Value() != "{" {
				return nil, false, fmt.Errorf("%w: missing value for %q at %s", ErrParse, key, keyPos)
			}
			obj, err := p.parseBody(false)
			if err != nil {
				return nil, false, err
			}
			val = obj
		}
	}
	ok, err := p.advance()
	if err != nil {
		return nil, false, err
	}
	if ok && p.r.State() == StateConditional {
		k, err := p.cond()
		if err != nil {
			return nil, false, err
		}
		keep = keep && k
	} else {
		p.unread()
	}
	prop := ir.Prop(key, val)
	if !keep {
		p.dropped(prop, keyPos)
	}
	return prop, keep, nil
}

func (p *parser) dropped(prop *ir.Node, pos fmt.Stringer) {
	if p.opts.logf != nil {
		p.opts.logf("dropped %q at %s by conditional\n", prop.Key, pos)
	}
	if debug.Cond() {
		debug.Logf("dropped by conditional at %s:\n%v\n", pos, prop)
	}
}

// cond evaluates the current conditional token.
func (p *parser) cond() (bool, error) {
	if p.conds == nil {
		return true, nil
	}
	keep, err := p.conds.eval(p.r.Value())
	if err != nil {
		return false, fmt.Errorf("%w at %s", err, p.r.Pos())
	}
	return keep, nil
}

// parseBody reads the children of an object. The opening brace has been
// consumed; unless top is set the closing one terminates the object.
func (p *parser) parseBody(top bool) (*ir.Node, error) {
	obj := ir.FromValues()
	start := p.r.Pos()
	for {
		ok, err := p.advance()
		if err != nil {
			return nil, err
		}
		if !ok {
			if top {
				return obj, nil
			}
			return nil, fmt.Errorf("%w: premature end of object opened at %s", ErrParse, start)
		}
		switch p.r.State() {
		case StateComment:
			if p.opts.comments {
				obj.Append(ir.FromComment(p.r.Value()))
			}
		case StateProperty:
			prop, keep, err := p.parseProperty()
			if err != nil {
				return nil, err
			}
			if keep {
				obj.Append(prop)
			}
		case StateObject:
			if p.r.Value() == "}" && !top {
				return obj, nil
			}
			return nil, fmt.Errorf("%w: unexpected %q at %s", ErrParse, p.r.Value(), p.r.Pos())
		case StateConditional:
			return nil, fmt.Errorf("%w: unexpected conditional [%s] at %s", ErrParse, p.r.Value(), p.r.Pos())
		}
	}
}
