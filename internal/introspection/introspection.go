package introspection

import (
	"sort"

	gqlintrospection "github.com/99designs/gqlgen/graphql/introspection"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/gqldirectives/internal/graphql"
)

// Directive is the `__Directive` introspection shape.
type Directive struct {
	Name         string        `json:"name" yaml:"name"`
	Description  *string       `json:"description" yaml:"description"`
	Locations    []string      `json:"locations" yaml:"locations"`
	Args         []*InputValue `json:"args" yaml:"args"`
	IsRepeatable bool          `json:"isRepeatable" yaml:"isRepeatable"`
}

// InputValue is the `__InputValue` introspection shape.
type InputValue struct {
	Name         string   `json:"name" yaml:"name"`
	Description  *string  `json:"description" yaml:"description"`
	Type         *TypeRef `json:"type" yaml:"type"`
	DefaultValue *string  `json:"defaultValue" yaml:"defaultValue"`
}

// TypeRef is the `__Type` reference used by introspection queries.
type TypeRef struct {
	Kind   string   `json:"kind" yaml:"kind"`
	Name   *string  `json:"name" yaml:"name"`
	OfType *TypeRef `json:"ofType" yaml:"ofType"`
}

// Directives describes defs the way a server answers `__schema { directives { ... } }`.
// The result is sorted by directive name.
func Directives(defs ast.DirectiveDefinitionList) []*Directive {
	schema := &ast.Schema{
		Types:      graphql.ScalarTypes(),
		Directives: make(map[string]*ast.DirectiveDefinition, len(defs)),
	}
	for _, def := range graphql.SortDirectiveDefinitions(defs) {
		schema.Directives[def.Name] = def
	}

	wrapped := gqlintrospection.WrapSchema(schema).Directives()

	result := make([]*Directive, 0, len(wrapped))
	for idx := range wrapped {
		d := &wrapped[idx]
		directive := &Directive{
			Name:         d.Name,
			Description:  d.Description(),
			Locations:    append([]string{}, d.Locations...),
			Args:         make([]*InputValue, 0, len(d.Args)),
			IsRepeatable: d.IsRepeatable,
		}
		for argIdx := range d.Args {
			arg := &d.Args[argIdx]
			directive.Args = append(directive.Args, &InputValue{
				Name:         arg.Name,
				Description:  arg.Description(),
				Type:         typeRef(arg.Type),
				DefaultValue: arg.DefaultValue,
			})
		}
		result = append(result, directive)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

func typeRef(typ *gqlintrospection.Type) *TypeRef {
	if typ == nil {
		return nil
	}

	return &TypeRef{
		Kind:   typ.Kind(),
		Name:   typ.Name(),
		OfType: typeRef(typ.OfType()),
	}
}
