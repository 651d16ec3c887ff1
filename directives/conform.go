package directives

import (
	"context"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vvakame/gqldirectives/internal/log"
)

// Conform reports how def differs from the built-in declaration of the same name.
// Descriptions are not compared. Definitions that are not built-ins always conform.
func Conform(def *ast.DirectiveDefinition) gqlerror.List {
	want := ForName(def.Name)
	if want == nil {
		return nil
	}

	var errs gqlerror.List

	if len(def.Arguments) != len(want.Arguments) {
		errs = append(errs, errorAt(
			def.Position,
			"Directive \"@%s\" must declare exactly %d argument, found %d.",
			def.Name, len(want.Arguments), len(def.Arguments),
		))
	}
	for _, wantArg := range want.Arguments {
		arg := def.Arguments.ForName(wantArg.Name)
		if arg == nil {
			errs = append(errs, errorAt(
				def.Position,
				"Directive \"@%s\" must declare argument \"%s\".",
				def.Name, wantArg.Name,
			))
			continue
		}
		found := "<nil>"
		if arg.Type != nil {
			found = arg.Type.String()
		}
		if found != wantArg.Type.String() {
			errs = append(errs, errorAt(
				positionOf(arg.Position, def.Position),
				"Directive \"@%s\" argument \"%s\" must be of type \"%s\", found \"%s\".",
				def.Name, arg.Name, wantArg.Type.String(), found,
			))
		}
		if arg.DefaultValue != nil {
			errs = append(errs, errorAt(
				positionOf(arg.Position, def.Position),
				"Directive \"@%s\" argument \"%s\" must not declare a default value.",
				def.Name, arg.Name,
			))
		}
	}
	for _, arg := range def.Arguments {
		if want.Arguments.ForName(arg.Name) != nil {
			continue
		}
		errs = append(errs, errorAt(
			positionOf(arg.Position, def.Position),
			"Directive \"@%s\" must not declare argument \"%s\".",
			def.Name, arg.Name,
		))
	}

	for _, loc := range want.Locations {
		if !hasLocation(def.Locations, loc) {
			errs = append(errs, errorAt(
				def.Position,
				"Directive \"@%s\" must be applicable to %s.",
				def.Name, loc,
			))
		}
	}
	listed := make(map[ast.DirectiveLocation]bool, len(def.Locations))
	for _, loc := range def.Locations {
		if listed[loc] {
			errs = append(errs, errorAt(
				def.Position,
				"Directive \"@%s\" must not list %s twice.",
				def.Name, loc,
			))
			continue
		}
		listed[loc] = true
		if !hasLocation(want.Locations, loc) {
			errs = append(errs, errorAt(
				def.Position,
				"Directive \"@%s\" must not be applicable to %s.",
				def.Name, loc,
			))
		}
	}

	if def.IsRepeatable != want.IsRepeatable {
		errs = append(errs, errorAt(
			def.Position,
			"Directive \"@%s\" must not be repeatable.",
			def.Name,
		))
	}

	return errs
}

// CheckSchemaDocument runs Conform on each built-in directive declared in doc
// and reports built-ins declared more than once.
func CheckSchemaDocument(ctx context.Context, doc *ast.SchemaDocument) gqlerror.List {
	_, logger := log.Named(ctx, "directives")

	var errs gqlerror.List
	seen := make(map[string]bool)
	for _, def := range doc.Directives {
		if !IsSpecified(def.Name) {
			continue
		}

		if seen[def.Name] {
			errs = append(errs, errorAt(def.Position, "Cannot redeclare directive @%s.", def.Name))
			continue
		}
		seen[def.Name] = true

		defErrs := Conform(def)
		logger.V(log.Debug).Info("checked built-in declaration", "directive", def.Name, "errors", len(defErrs))
		errs = append(errs, defErrs...)
	}

	return errs
}

func hasLocation(locations []ast.DirectiveLocation, target ast.DirectiveLocation) bool {
	for _, loc := range locations {
		if loc == target {
			return true
		}
	}
	return false
}

func positionOf(candidates ...*ast.Position) *ast.Position {
	for _, pos := range candidates {
		if pos != nil {
			return pos
		}
	}
	return nil
}

func errorAt(pos *ast.Position, message string, args ...interface{}) *gqlerror.Error {
	if pos == nil || pos.Src == nil {
		return gqlerror.Errorf(message, args...)
	}
	return gqlerror.ErrorPosf(pos, message, args...)
}
