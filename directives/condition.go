package directives

import "github.com/vektah/gqlparser/v2/ast"

// ShouldInclude determines if a field, fragment spread or inline fragment carrying
// directives should be included, where `@skip` has higher precedence than `@include`.
// Variables are resolved from vars. Directive definitions are not required,
// so unvalidated documents can be evaluated too.
func ShouldInclude(directives ast.DirectiveList, vars map[string]interface{}) (bool, error) {
	if skip := directives.ForName(Skip.Name); skip != nil {
		v, err := ifArgument(skip, vars)
		if err != nil {
			return false, err
		}
		if v {
			return false, nil
		}
	}

	if include := directives.ForName(Include.Name); include != nil {
		v, err := ifArgument(include, vars)
		if err != nil {
			return false, err
		}
		if !v {
			return false, nil
		}
	}

	return true, nil
}

func ifArgument(directive *ast.Directive, vars map[string]interface{}) (bool, error) {
	argDef := ForName(directive.Name).Arguments[0]

	arg := directive.Arguments.ForName(argDef.Name)
	if arg == nil || arg.Value == nil {
		return false, errorAt(
			directive.Position,
			"Directive \"@%s\" argument \"%s\" of type \"%s\" is required, but it was not provided.",
			directive.Name, argDef.Name, argDef.Type.String(),
		)
	}

	if arg.Value.Kind == ast.Variable {
		if _, ok := vars[arg.Value.Raw]; !ok && !hasDefaultValue(arg.Value) {
			return false, errorAt(
				positionOf(arg.Value.Position, directive.Position),
				"Argument \"%s\" of required type \"%s\" was provided the variable \"$%s\" which was not provided a runtime value.",
				argDef.Name, argDef.Type.String(), arg.Value.Raw,
			)
		}
	}

	v, err := arg.Value.Value(vars)
	if err != nil {
		return false, errorAt(
			positionOf(arg.Value.Position, directive.Position),
			"Argument \"%s\" has invalid value %s: %s.",
			argDef.Name, arg.Value.String(), err.Error(),
		)
	}

	switch v := v.(type) {
	case bool:
		return v, nil
	case nil:
		return false, errorAt(
			positionOf(arg.Value.Position, directive.Position),
			"Argument \"%s\" of non-null type \"%s\" must not be null.",
			argDef.Name, argDef.Type.String(),
		)
	default:
		return false, errorAt(
			positionOf(arg.Value.Position, directive.Position),
			"Argument \"%s\" has invalid value %s: Boolean cannot represent a non boolean value.",
			argDef.Name, arg.Value.String(),
		)
	}
}

func hasDefaultValue(value *ast.Value) bool {
	return value.VariableDefinition != nil && value.VariableDefinition.DefaultValue != nil
}
