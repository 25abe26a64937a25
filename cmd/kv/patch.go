package main

import (
	"encoding/json"
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/format"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	d, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	apply, err := patchFunc(d, cfg.Merge)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	z, err := cfg.serializer(false)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return eachInput(cc, z, args[1:], func(_ int, node *ir.Node) error {
		res, err := patchNode(node, apply)
		if err != nil {
			return err
		}
		return format.Write(cc.Out, res, cfg.outFormat(), opts...)
	})
}

func patchFunc(d []byte, merge bool) (func([]byte) ([]byte, error), error) {
	if merge {
		return func(doc []byte) ([]byte, error) { return jsonpatch.MergePatch(doc, d) }, nil
	}
	p, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, err
	}
	return p.Apply, nil
}

// patchNode applies apply to the JSON form of node.
func patchNode(node *ir.Node, apply func([]byte) ([]byte, error)) (*ir.Node, error) {
	doc, err := json.Marshal(node)
	if err != nil {
		return nil, err
	}
	out, err := apply(doc)
	if err != nil {
		return nil, fmt.Errorf("error patching: %w", err)
	}
	res := &ir.Node{}
	if err := json.Unmarshal(out, res); err != nil {
		return nil, fmt.Errorf("patch result is not a tree: %w", err)
	}
	return res, nil
}
