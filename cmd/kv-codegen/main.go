package main

import (
	"context"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/gomap/codegen"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommand("kv-codegen").
		WithSynopsis("kv-codegen [opts] [packages]").
		WithDescription("Generate KVTypeName/KVFields methods for structs marked //kv:record.").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

type Config struct {
	OutputFile string `cli:"name=o desc='output file for generated code (default: <package>_kv_gen.go)'"`
	Dir        string `cli:"name=dir desc='directory to load packages from (default: current directory)'"`
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	dir := cfg.Dir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}
	pkgs, err := codegen.Load(dir, args...)
	if err != nil {
		return err
	}
	if len(pkgs) == 0 {
		fmt.Fprintf(cc.Out, "no records found in %s\n", dir)
		return nil
	}
	if cfg.OutputFile != "" && len(pkgs) > 1 {
		return fmt.Errorf("%w: -o with %d packages", cli.ErrUsage, len(pkgs))
	}
	for _, pkg := range pkgs {
		path, err := codegen.WriteFile(pkg, cfg.OutputFile)
		if err != nil {
			return fmt.Errorf("failed to generate %s: %w", pkg.Path, err)
		}
		fmt.Fprintf(cc.Out, "%s: %d records -> %s\n", pkg.Path, len(pkg.Structs), path)
	}
	return nil
}
