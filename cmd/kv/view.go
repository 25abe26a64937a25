package main

import (
	"github.com/scott-cotton/cli"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/format"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	z, err := cfg.serializer(cfg.Comments)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return eachInput(cc, z, args, func(_ int, node *ir.Node) error {
		return format.Write(cc.Out, node, cfg.outFormat(), opts...)
	})
}
