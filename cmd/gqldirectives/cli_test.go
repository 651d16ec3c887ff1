package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvakame/gqldirectives/directives"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	filePath := path.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	return filePath
}

func TestPrint(t *testing.T) {
	t.Run("sdl", func(t *testing.T) {
		stdout, _, err := execute(t, "print")
		require.NoError(t, err)
		assert.Equal(t, directives.SDL, stdout)
	})

	t.Run("only skip", func(t *testing.T) {
		stdout, _, err := execute(t, "print", "--only", "skip")
		require.NoError(t, err)
		assert.Equal(t, directives.String(directives.Specified[1:]), stdout)
		assert.NotContains(t, stdout, "@include")
	})

	t.Run("sorted", func(t *testing.T) {
		stdout, _, err := execute(t, "print", "--only", "skip,include", "--sort")
		require.NoError(t, err)
		assert.Equal(t, directives.SDL, stdout)
	})

	t.Run("json", func(t *testing.T) {
		stdout, _, err := execute(t, "print", "--format", "json")
		require.NoError(t, err)

		var got []struct {
			Name      string   `json:"name"`
			Locations []string `json:"locations"`
			Args      []struct {
				Name string `json:"name"`
			} `json:"args"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "include", got[0].Name)
		assert.Equal(t, "skip", got[1].Name)
		assert.Equal(t, []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"}, got[1].Locations)
		require.Len(t, got[0].Args, 1)
		assert.Equal(t, "if", got[0].Args[0].Name)
	})

	t.Run("yaml from config", func(t *testing.T) {
		configPath := writeFile(t, "config.yaml", heredoc.Doc(`
			format: yaml
			directives:
			  - include
		`))

		stdout, _, err := execute(t, "print", "--config", configPath)
		require.NoError(t, err)

		var got []map[string]interface{}
		require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "include", got[0]["name"])
		assert.Equal(t, false, got[0]["isRepeatable"])
	})

	t.Run("flags override config", func(t *testing.T) {
		configPath := writeFile(t, "config.yaml", heredoc.Doc(`
			format: yaml
		`))

		stdout, _, err := execute(t, "print", "--config", configPath, "--format", "sdl", "--indent", "\t")
		require.NoError(t, err)
		assert.Equal(t, directives.String(directives.Specified, directives.WithIndent("\t")), stdout)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := execute(t, "print", "--format", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown format "xml"`)
	})

	t.Run("non blank indent", func(t *testing.T) {
		_, _, err := execute(t, "print", "--indent", "xx")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `indent "xx" must consist of spaces and tabs only`)
	})

	t.Run("unknown directive", func(t *testing.T) {
		_, _, err := execute(t, "print", "--only", "defer")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown directive "defer"`)
	})
}

func TestCheck(t *testing.T) {
	t.Run("conforming", func(t *testing.T) {
		filePath := writeFile(t, "schema.graphqls", heredoc.Doc(`
			directive @include(if: Boolean!) on FIELD | FRAGMENT_SPREAD | INLINE_FRAGMENT

			type Query {
				hello: String
			}
		`))

		stdout, _, err := execute(t, "check", filePath)
		require.NoError(t, err)
		assert.Equal(t, "OK\n", stdout)
	})

	t.Run("verbose", func(t *testing.T) {
		filePath := writeFile(t, "directives.graphql", directives.SDL)

		_, stderr, err := execute(t, "check", "-v", filePath)
		require.NoError(t, err)
		assert.Contains(t, stderr, "checked built-in declaration")
		assert.Contains(t, stderr, `"directive"="skip"`)

		_, stderr, err = execute(t, "check", filePath)
		require.NoError(t, err)
		assert.NotContains(t, stderr, "checked built-in declaration")
	})

	t.Run("canonical file", func(t *testing.T) {
		filePath := writeFile(t, "directives.graphql", directives.SDL)

		_, _, err := execute(t, "check", filePath)
		require.NoError(t, err)
	})

	t.Run("not conforming", func(t *testing.T) {
		filePath := writeFile(t, "schema.graphqls", heredoc.Doc(`
			directive @skip(if: Boolean) on FIELD | FRAGMENT_SPREAD | INLINE_FRAGMENT
		`))

		stdout, stderr, err := execute(t, "check", filePath)
		require.ErrorIs(t, err, errCheckFailed)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, filePath+`:1: Directive "@skip" argument "if" must be of type "Boolean!", found "Boolean".`)
	})

	t.Run("syntax error", func(t *testing.T) {
		filePath := writeFile(t, "broken.graphqls", "directive @skip(if: Boolean!)")

		_, stderr, err := execute(t, "check", filePath)
		require.ErrorIs(t, err, errCheckFailed)
		assert.True(t, strings.Contains(stderr, filePath), stderr)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := execute(t, "check", path.Join(t.TempDir(), "missing.graphqls"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, errCheckFailed)
	})

	t.Run("no arguments", func(t *testing.T) {
		_, _, err := execute(t, "check")
		require.Error(t, err)
	})
}
