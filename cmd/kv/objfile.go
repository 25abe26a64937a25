package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	kv "github.com/DeadZoneLuna/WwisePCKUnpacker"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
)

// getObjFile decodes the file at path, or standard input for "-".
func getObjFile(cc *cli.Context, z *kv.Serializer, path string) (*ir.Node, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	node, err := z.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return node, nil
}

// eachInput calls f with the tree of every file of args, or of standard
// input when there are none.
func eachInput(cc *cli.Context, z *kv.Serializer, args []string, f func(i int, node *ir.Node) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		node, err := getObjFile(cc, z, arg)
		if err != nil {
			return err
		}
		if err := f(i, node); err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
	}
	return nil
}
