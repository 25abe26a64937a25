package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	z, err := cfg.serializer(cfg.Comments)
	if err != nil {
		return err
	}
	a, err := getObjFile(cc, z, args[0])
	if err != nil {
		return err
	}
	b, err := getObjFile(cc, z, args[1])
	if err != nil {
		return err
	}
	changes := libdiff.Diff(a, b)
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	if len(changes) == 0 {
		return nil
	}
	color := cfg.Color || isTerminal(cc.Out)
	if err := libdiff.Write(cc.Out, changes, libdiff.WriteColor(color), libdiff.WriteEncodeOptions(cfg.encOpts(nil)...)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
