package directives

import (
	"bytes"
	"io"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

type renderConfig struct {
	indent string
}

type RenderOption func(cfg *renderConfig)

// WithIndent uses indent for argument descriptions instead of two spaces.
func WithIndent(indent string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.indent = indent
	}
}

// Render writes defs as SDL, one blank line between definitions.
func Render(w io.Writer, defs ast.DirectiveDefinitionList, opts ...RenderOption) error {
	cfg := &renderConfig{
		indent: "  ",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// formatter has no error reporting, so writes are collected first
	var buf bytes.Buffer
	for idx, def := range defs {
		if idx != 0 {
			buf.WriteString("\n")
		}
		f := formatter.NewFormatter(&buf, formatter.WithIndent(cfg.indent), formatter.WithBuiltin())
		f.FormatSchemaDocument(&ast.SchemaDocument{
			Directives: ast.DirectiveDefinitionList{def},
		})
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func String(defs ast.DirectiveDefinitionList, opts ...RenderOption) string {
	var buf bytes.Buffer
	// bytes.Buffer never fails on write
	_ = Render(&buf, defs, opts...)
	return buf.String()
}
