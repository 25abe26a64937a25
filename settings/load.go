package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// Format names a settings file syntax.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// file is the on-disk shape of a settings file. Absent keys leave the
// base profile untouched.
type file struct {
	Profile            string `yaml:"profile" toml:"profile"`
	IgnoreRootToken    *bool  `yaml:"ignoreRootToken" toml:"ignoreRootToken"`
	LowercaseKeys      *bool  `yaml:"lowercaseKeys" toml:"lowercaseKeys"`
	UseEscapeSequences *bool  `yaml:"useEscapeSequences" toml:"useEscapeSequences"`
	UseConditionals    *bool  `yaml:"useConditionals" toml:"useConditionals"`
	MaxTokenSize       *int   `yaml:"maxTokenSize" toml:"maxTokenSize"`
	Platform           string `yaml:"platform" toml:"platform"`
	Xbox360            *bool  `yaml:"x360" toml:"x360"`
}

// FormatOf returns the settings format implied by a file name.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads settings from a yaml or toml file.
func Load(path string) (Settings, error) {
	f, err := FormatOf(path)
	if err != nil {
		return Settings{}, err
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	s, err := Parse(d, f)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes settings in the given format.
func Parse(d []byte, f Format) (Settings, error) {
	var sf file
	switch f {
	case YAML:
		if err := yaml.Unmarshal(d, &sf); err != nil {
			return Settings{}, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	case TOML:
		if _, err := toml.Decode(string(d), &sf); err != nil {
			return Settings{}, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	default:
		return Settings{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return sf.apply()
}

func (sf *file) apply() (Settings, error) {
	s, err := Profile(sf.Profile)
	if err != nil {
		return Settings{}, err
	}
	setBool(&s.IgnoreRootToken, sf.IgnoreRootToken)
	setBool(&s.LowercaseKeys, sf.LowercaseKeys)
	setBool(&s.UseEscapeSequences, sf.UseEscapeSequences)
	setBool(&s.UseConditionals, sf.UseConditionals)
	if sf.MaxTokenSize != nil {
		s.MaxTokenSize = *sf.MaxTokenSize
	}
	if sf.Platform != "" {
		p, err := ParsePlatform(sf.Platform)
		if err != nil {
			return Settings{}, err
		}
		s.Platform = p
	}
	setBool(&s.Platform.Xbox360, sf.Xbox360)
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
