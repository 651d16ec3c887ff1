package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vvakame/gqldirectives/directives"
	"github.com/vvakame/gqldirectives/internal/log"
)

var errCheckFailed = errors.New("built-in directive declarations do not conform")

func checkCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "check FILE...",
		Short: "Check @include and @skip declarations in schema files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := log.FromContext(ctx)

			var errs gqlerror.List
			for _, filePath := range args {
				b, err := os.ReadFile(filePath)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", filePath, err)
				}

				doc, err := parser.ParseSchema(&ast.Source{
					Name:  filePath,
					Input: string(b),
				})
				if err != nil {
					errs = append(errs, gqlerror.WrapIfUnwrapped(err))
					continue
				}

				fileErrs := directives.CheckSchemaDocument(ctx, doc)
				logger.Info("checked schema", "file", filePath, "directives", len(doc.Directives), "errors", len(fileErrs))
				errs = append(errs, fileErrs...)
			}

			for _, err := range errs {
				fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
			}
			if len(errs) != 0 {
				return errCheckFailed
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	return c
}
