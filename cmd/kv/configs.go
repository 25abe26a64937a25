package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	kv "github.com/DeadZoneLuna/WwisePCKUnpacker"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/encode"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/format"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/settings"
)

type MainConfig struct {
	Profile  string `cli:"name=profile desc='grammar profile: default or common'"`
	Config   string `cli:"name=config desc='settings file (.yaml or .toml)'"`
	Root     bool   `cli:"name=root desc='ignore the root token'"`
	Platform string `cli:"name=platform desc='platform for conditionals: windows, osx, linux or host'"`
	Color    bool   `cli:"name=color desc='encode with color'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat == nil {
		return format.KVFormat
	}
	return *cfg.OutFormat
}

// settings resolves the grammar options: the settings file if given,
// else the profile, then the flags.
func (cfg *MainConfig) settings() (settings.Settings, error) {
	var (
		s   settings.Settings
		err error
	)
	if cfg.Config != "" {
		s, err = settings.Load(cfg.Config)
	} else {
		s, err = settings.Profile(cfg.Profile)
	}
	if err != nil {
		return s, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if cfg.Root {
		s.IgnoreRootToken = true
	}
	if cfg.Platform != "" {
		p, err := settings.ParsePlatform(cfg.Platform)
		if err != nil {
			return s, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		s = s.WithPlatform(p)
	}
	return s, nil
}

func (cfg *MainConfig) serializer(comments bool) (*kv.Serializer, error) {
	s, err := cfg.settings()
	if err != nil {
		return nil, err
	}
	return kv.NewSerializer(kv.WithSettings(s), kv.WithComments(comments)), nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	s, err := cfg.settings()
	if err != nil {
		s = settings.Common()
	}
	res := []encode.EncodeOption{encode.EncodeSettings(s)}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	if isTerminal(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	Comments bool `cli:"name=c desc='include comments'"`
	View     *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Comments bool `cli:"name=c desc='include comments'"`
	Dump     *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse  bool `cli:"name=r desc='reverse the diff'"`
	Comments bool `cli:"name=c desc='compare comments too'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='treat the patch as an RFC 7386 merge patch'"`

	Patch *cli.Command
}
