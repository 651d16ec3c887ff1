package graphql

import "github.com/vektah/gqlparser/v2/ast"

// BuiltInPos marks values that belong to the GraphQL specification rather than a user document.
var BuiltInPos = &ast.Position{
	Src: &ast.Source{
		Name:    "builtin",
		BuiltIn: true,
	},
}

// GraphQLBoolean is the only scalar the conditional directives refer to.
var GraphQLBoolean = &ast.Definition{
	Kind:        ast.Scalar,
	Description: "The `Boolean` scalar type represents `true` or `false`.",
	Name:        "Boolean",
	Position:    BuiltInPos,
	BuiltIn:     true,
}

var scalarTypes = ast.DefinitionList{
	GraphQLBoolean,
}

func ScalarForName(typeName string) *ast.Definition {
	return scalarTypes.ForName(typeName)
}

// ScalarTypes returns the scalars referenced by built-in directive arguments, keyed by name.
func ScalarTypes() map[string]*ast.Definition {
	result := make(map[string]*ast.Definition, len(scalarTypes))
	for _, def := range scalarTypes {
		result[def.Name] = def
	}
	return result
}
