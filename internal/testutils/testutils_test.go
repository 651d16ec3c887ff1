package testutils

import (
	"os"
	"path"
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
)

func TestFindOption(t *testing.T) {
	source := heredoc.Doc(`
		# option:errors: 3
		# option:name:reviews
		type Query { a: Int }
	`)

	if v := FindOptionInt(t, "errors", source); v != 3 {
		t.Errorf("unexpected errors option: %d", v)
	}
	if v := FindOptionString(t, "name", source); v != "reviews" {
		t.Errorf("unexpected name option: %s", v)
	}
	if v := FindOptionString(t, "missing", source); v != "" {
		t.Errorf("unexpected missing option: %s", v)
	}
}

func TestCheckGoldenFile(t *testing.T) {
	expectFilePath := path.Join(t.TempDir(), "nested", "out.txt")

	// first run writes the file
	CheckGoldenFile(t, []byte("hello\n"), expectFilePath)

	b, err := os.ReadFile(expectFilePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "hello\n" {
		t.Errorf("unexpected content: %q", string(b))
	}

	CheckGoldenFile(t, []byte("hello\n"), expectFilePath)
}

func TestDiff(t *testing.T) {
	if d := Diff("a\nb\n", "a\nb\n"); d != "" {
		t.Errorf("unexpected diff: %s", d)
	}

	d := Diff("a\nb\n", "a\nc\n")
	if d == "" {
		t.Fatal("diff is expected")
	}
	if !strings.HasPrefix(d, "--- expect\n+++ actual\n") {
		t.Errorf("unexpected header:\n%s", d)
	}
	if !strings.Contains(d, "\n-b\n+c\n") {
		t.Errorf("unexpected hunk:\n%s", d)
	}
}
