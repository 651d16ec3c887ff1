package graphql

import (
	"sort"

	"github.com/vektah/gqlparser/v2/ast"
)

// SortDirectiveDefinitions returns a lexicographically sorted copy of defs.
// Argument lists are sorted too; the given definitions are left untouched.
func SortDirectiveDefinitions(defs ast.DirectiveDefinitionList) ast.DirectiveDefinitionList {
	sortArgumentDefinitionList := func(argDefs ast.ArgumentDefinitionList) ast.ArgumentDefinitionList {
		sorted := append(ast.ArgumentDefinitionList(nil), argDefs...)
		sort.SliceStable(sorted, func(i, j int) bool {
			argDefA := sorted[i]
			argDefB := sorted[j]
			return argDefA.Name < argDefB.Name
		})
		return sorted
	}

	result := make(ast.DirectiveDefinitionList, 0, len(defs))
	for _, def := range defs {
		cpy := *def
		cpy.Arguments = sortArgumentDefinitionList(def.Arguments)
		result = append(result, &cpy)
	}
	sort.SliceStable(result, func(i, j int) bool {
		directiveA := result[i]
		directiveB := result[j]
		return directiveA.Name < directiveB.Name
	})

	return result
}
