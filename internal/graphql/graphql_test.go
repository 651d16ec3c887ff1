package graphql

import (
	"testing"

	"github.com/vektah/gqlparser/v2/ast"
)

func TestSortDirectiveDefinitions(t *testing.T) {
	defs := ast.DirectiveDefinitionList{
		{
			Name: "skip",
			Arguments: ast.ArgumentDefinitionList{
				{Name: "if"},
			},
		},
		{
			Name: "include",
			Arguments: ast.ArgumentDefinitionList{
				{Name: "when"},
				{Name: "if"},
			},
		},
	}

	sorted := SortDirectiveDefinitions(defs)

	if len(sorted) != 2 {
		t.Fatalf("unexpected length: %d", len(sorted))
	}
	if sorted[0].Name != "include" || sorted[1].Name != "skip" {
		t.Errorf("unexpected order: %s, %s", sorted[0].Name, sorted[1].Name)
	}
	if v := sorted[0].Arguments[0].Name; v != "if" {
		t.Errorf("unexpected first argument: %s", v)
	}

	// input must not be reordered
	if defs[0].Name != "skip" {
		t.Errorf("input order changed: %s", defs[0].Name)
	}
	if v := defs[1].Arguments[0].Name; v != "when" {
		t.Errorf("input arguments changed: %s", v)
	}
}

func TestScalarForName(t *testing.T) {
	if def := ScalarForName("Boolean"); def != GraphQLBoolean {
		t.Errorf("unexpected definition: %v", def)
	}
	if def := ScalarForName("Int"); def != nil {
		t.Errorf("unexpected definition: %v", def)
	}
	if types := ScalarTypes(); types["Boolean"] != GraphQLBoolean {
		t.Errorf("Boolean is missing: %v", types)
	}
}
