package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/format"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a key path", cli.ErrUsage)
	}
	s, err := cfg.settings()
	if err != nil {
		return err
	}
	keys := splitPath(args[0], s.LowercaseKeys)
	z, err := cfg.serializer(false)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return eachInput(cc, z, args[1:], func(_ int, node *ir.Node) error {
		res := node.GetPath(keys...)
		if res == nil {
			return fmt.Errorf("%q not found", args[0])
		}
		if res.Type == ir.ValueType && cfg.outFormat().IsKV() {
			_, err := io.WriteString(cc.Out, res.String+"\n")
			return err
		}
		return format.Write(cc.Out, res, cfg.outFormat(), opts...)
	})
}

// splitPath splits a '/' separated key path, folding it when keys are
// read folded.
func splitPath(p string, lower bool) []string {
	if lower {
		p = cases.Lower(language.Und).String(p)
	}
	var res []string
	for _, k := range strings.Split(p, "/") {
		if k != "" {
			res = append(res, k)
		}
	}
	return res
}
