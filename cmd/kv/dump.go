package main

import (
	"github.com/scott-cotton/cli"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/format"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	z, err := cfg.serializer(cfg.Comments)
	if err != nil {
		return err
	}
	f := format.JSONFormat
	if cfg.OutFormat != nil && cfg.OutFormat.IsYAML() {
		f = format.YAMLFormat
	}
	return eachInput(cc, z, args, func(_ int, node *ir.Node) error {
		return format.Write(cc.Out, node, f)
	})
}
