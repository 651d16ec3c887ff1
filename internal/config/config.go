package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/gqldirectives/directives"
)

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = ".gqldirectives.yaml"

type Format string

const (
	FormatSDL  Format = "sdl"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

type Config struct {
	Format     Format   `yaml:"format"`
	Indent     string   `yaml:"indent"`
	Directives []string `yaml:"directives"`
}

func Default() *Config {
	return &Config{
		Format:     FormatSDL,
		Indent:     "  ",
		Directives: directives.Names(),
	}
}

// Load reads the YAML file at path on top of Default.
// An empty path means DefaultFileName, which may be absent.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	cfg := Default()

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	err = yaml.UnmarshalWithOptions(b, cfg, yaml.DisallowUnknownField())
	if err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %s", path, yaml.FormatError(err, false, true))
	}

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (cfg *Config) Validate() error {
	switch cfg.Format {
	case FormatSDL, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q, must be one of sdl, json, yaml", cfg.Format)
	}

	if strings.Trim(cfg.Indent, " \t") != "" {
		return fmt.Errorf("indent %q must consist of spaces and tabs only", cfg.Indent)
	}

	if len(cfg.Directives) == 0 {
		return errors.New("directives must not be empty")
	}
	seen := make(map[string]bool, len(cfg.Directives))
	for _, name := range cfg.Directives {
		if !directives.IsSpecified(name) {
			return fmt.Errorf("unknown directive %q", name)
		}
		if seen[name] {
			return fmt.Errorf("directive %q is listed twice", name)
		}
		seen[name] = true
	}

	return nil
}

// Definitions returns the selected built-in definitions in the configured order.
func (cfg *Config) Definitions() (ast.DirectiveDefinitionList, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	defs := make(ast.DirectiveDefinitionList, 0, len(cfg.Directives))
	for _, name := range cfg.Directives {
		defs = append(defs, directives.ForName(name))
	}

	return defs, nil
}
