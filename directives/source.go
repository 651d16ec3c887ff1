package directives

import (
	_ "embed"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// SDL is the canonical schema definition language text of the built-in directives.
//
//go:embed directives.graphql
var SDL string

var Source = &ast.Source{
	Name:    "directives.graphql",
	Input:   SDL,
	BuiltIn: true,
}

// Load parses SDL into a schema document.
// Every call returns a fresh document, so callers may modify the result.
func Load() (*ast.SchemaDocument, error) {
	doc, err := parser.ParseSchema(Source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", Source.Name, err)
	}

	return doc, nil
}
