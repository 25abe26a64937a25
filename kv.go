// Package kv reads and writes KeyValues text, the nested key/value format
// of Valve data files (also known as VDF).
//
// The functions here combine the packages of the module: parse reads
// text into ir trees, encode writes them back, and gomap projects Go
// values onto trees. All of them use settings.Common() unless told
// otherwise.
//
//	node, err := kv.Deserialize(`"root" { "key" "value" }`)
//	text, err := kv.Serialize(node)
package kv

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/debug"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/encode"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/gomap"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/parse"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/settings"
)

// ErrArgument is returned for a nil tree, reader or writer.
var ErrArgument = errors.New("invalid argument")

type Option func(*Serializer)

func WithSettings(s settings.Settings) Option {
	return func(z *Serializer) { z.settings = s }
}

// WithComments keeps comments when decoding. Comments in a tree are
// always written.
func WithComments(v bool) Option {
	return func(z *Serializer) { z.comments = v }
}

func WithMapOptions(opts ...gomap.MapOption) Option {
	return func(z *Serializer) { z.mapOpts = append(z.mapOpts, opts...) }
}

// Serializer holds the options of a series of reads and writes.
type Serializer struct {
	settings settings.Settings
	comments bool
	mapOpts  []gomap.MapOption
}

func NewSerializer(opts ...Option) *Serializer {
	z := &Serializer{settings: settings.Common()}
	for _, opt := range opts {
		opt(z)
	}
	return z
}

func (z *Serializer) Settings() settings.Settings { return z.settings }

func (z *Serializer) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.WithSettings(z.settings),
		parse.ParseComments(z.comments),
	}
}

func (z *Serializer) encodeOpts() []encode.EncodeOption {
	return []encode.EncodeOption{encode.EncodeSettings(z.settings)}
}

// Encode writes tree to w.
func (z *Serializer) Encode(w io.Writer, tree *ir.Node) error {
	if w == nil {
		return fmt.Errorf("%w: nil writer", ErrArgument)
	}
	if tree == nil {
		return fmt.Errorf("%w: nil tree", ErrArgument)
	}
	return z.encode(w, tree)
}

// EncodeValue projects v with the object mapper and writes the result
// to w.
func (z *Serializer) EncodeValue(w io.Writer, v any) error {
	if w == nil {
		return fmt.Errorf("%w: nil writer", ErrArgument)
	}
	tree, err := gomap.ToIR(v, z.mapOpts...)
	if err != nil {
		return err
	}
	return z.encode(w, tree)
}

func (z *Serializer) encode(w io.Writer, tree *ir.Node) error {
	if debug.Encode() {
		debug.Logf("encode %s %q, escapes %t\n", tree.Type, tree.Key, z.settings.UseEscapeSequences)
	}
	return encode.Encode(tree, w, z.encodeOpts()...)
}

// Decode reads one document from r.
func (z *Serializer) Decode(r io.Reader) (*ir.Node, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrArgument)
	}
	return parse.ParseReader(r, z.parseOpts()...)
}

// DecodeFile reads the document in the file at path.
func (z *Serializer) DecodeFile(path string) (*ir.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	node, err := z.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}

// EncodeFile writes tree to the file at path, replacing its content.
func (z *Serializer) EncodeFile(path string, tree *ir.Node) (err error) {
	if tree == nil {
		return fmt.Errorf("%w: nil tree", ErrArgument)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return z.Encode(f, tree)
}

// Serialize returns the text of tree.
func Serialize(tree *ir.Node, opts ...Option) (string, error) {
	var buf bytes.Buffer
	if err := NewSerializer(opts...).Encode(&buf, tree); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SerializeValue returns the text of the projection of v.
func SerializeValue(v any, opts ...Option) (string, error) {
	var buf bytes.Buffer
	if err := NewSerializer(opts...).EncodeValue(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Deserialize parses text.
func Deserialize(text string, opts ...Option) (*ir.Node, error) {
	return NewSerializer(opts...).Decode(bytes.NewReader([]byte(text)))
}
