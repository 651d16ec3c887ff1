// Package directives provides the built-in @include and @skip directive declarations.
package directives

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/gqldirectives/internal/graphql"
)

// conditional locations shared by @include and @skip.
var conditionalLocations = []ast.DirectiveLocation{
	ast.LocationField,
	ast.LocationFragmentSpread,
	ast.LocationInlineFragment,
}

// Include is used to conditionally include fields or fragments.
var Include = &ast.DirectiveDefinition{
	Description: "Directs the executor to include this field or fragment only when the `if` argument is true.",
	Name:        "include",
	Arguments: ast.ArgumentDefinitionList{
		&ast.ArgumentDefinition{
			Description: "Included when true.",
			Name:        "if",
			Type:        ast.NonNullNamedType(graphql.GraphQLBoolean.Name, graphql.BuiltInPos),
			Position:    graphql.BuiltInPos,
		},
	},
	Locations: conditionalLocations,
	Position:  graphql.BuiltInPos,
}

// Skip is used to conditionally skip (exclude) fields or fragments.
var Skip = &ast.DirectiveDefinition{
	Description: "Directs the executor to skip this field or fragment when the `if` argument is true.",
	Name:        "skip",
	Arguments: ast.ArgumentDefinitionList{
		&ast.ArgumentDefinition{
			Description: "Skipped when true.",
			Name:        "if",
			Type:        ast.NonNullNamedType(graphql.GraphQLBoolean.Name, graphql.BuiltInPos),
			Position:    graphql.BuiltInPos,
		},
	},
	Locations: conditionalLocations,
	Position:  graphql.BuiltInPos,
}

// Specified lists the built-in directives in declaration order.
// The values are shared; do not modify them.
var Specified = ast.DirectiveDefinitionList{
	Include,
	Skip,
}

// ForName returns the built-in definition named name, or nil.
func ForName(name string) *ast.DirectiveDefinition {
	return Specified.ForName(name)
}

func IsSpecified(name string) bool {
	return ForName(name) != nil
}

// Names returns the built-in directive names in declaration order.
func Names() []string {
	names := make([]string, 0, len(Specified))
	for _, def := range Specified {
		names = append(names, def.Name)
	}
	return names
}
