package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/gqldirectives/directives"
	"github.com/vvakame/gqldirectives/internal/config"
	"github.com/vvakame/gqldirectives/internal/graphql"
	"github.com/vvakame/gqldirectives/internal/introspection"
	"github.com/vvakame/gqldirectives/internal/log"
)

func printCmd(global *globalOptions) *cobra.Command {
	var format string
	var indent string
	var only []string
	var sorted bool

	c := &cobra.Command{
		Use:   "print",
		Short: "Print the built-in directive declarations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(global.configPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("format") {
				cfg.Format = config.Format(format)
			}
			if cmd.Flags().Changed("indent") {
				cfg.Indent = indent
			}
			if cmd.Flags().Changed("only") {
				cfg.Directives = only
			}

			defs, err := cfg.Definitions()
			if err != nil {
				return err
			}
			if sorted {
				defs = graphql.SortDirectiveDefinitions(defs)
			}

			log.FromContext(cmd.Context()).Info("printing directives", "format", cfg.Format, "directives", cfg.Directives)

			return writeDefinitions(cmd.OutOrStdout(), cfg, defs)
		},
	}

	c.Flags().StringVarP(&format, "format", "f", string(config.FormatSDL), "output format: sdl, json or yaml")
	c.Flags().StringVar(&indent, "indent", "  ", "indent used for SDL output")
	c.Flags().StringSliceVar(&only, "only", nil, "directives to print (default all)")
	c.Flags().BoolVar(&sorted, "sort", false, "sort directives by name")

	return c
}

func writeDefinitions(w io.Writer, cfg *config.Config, defs ast.DirectiveDefinitionList) error {
	switch cfg.Format {
	case config.FormatSDL:
		return directives.Render(w, defs, directives.WithIndent(cfg.Indent))

	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", cfg.Indent)
		return enc.Encode(introspection.Directives(defs))

	case config.FormatYAML:
		b, err := yaml.Marshal(introspection.Directives(defs))
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err

	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
}
