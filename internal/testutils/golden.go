package testutils

import (
	"os"
	"path"

	"github.com/pmezard/go-difflib/difflib"
)

// CheckGoldenFile compares actual with the content of expectFilePath.
// A missing file is created from actual; set UPDATE_GOLDEN=1 to rewrite existing ones.
func CheckGoldenFile(t TestingT, actual []byte, expectFilePath string) {
	t.Helper()

	expect, err := os.ReadFile(expectFilePath)
	if os.IsNotExist(err) || (err == nil && os.Getenv("UPDATE_GOLDEN") == "1") {
		err = os.MkdirAll(path.Dir(expectFilePath), 0755)
		if err != nil {
			t.Fatal(err)
		}
		err = os.WriteFile(expectFilePath, actual, 0644)
		if err != nil {
			t.Fatal(err)
		}
		t.Logf("golden file %s is written", expectFilePath)
		return
	} else if err != nil {
		t.Error(err)
		return
	}

	if d := Diff(string(expect), string(actual)); d != "" {
		t.Errorf("%s mismatch:\n%s", expectFilePath, d)
	}
}

// Diff returns a unified diff between expect and actual, or an empty string when they are equal.
func Diff(expect, actual string) string {
	if expect == actual {
		return ""
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(expect),
		B:        difflib.SplitLines(actual),
		FromFile: "expect",
		ToFile:   "actual",
		Context:  5,
	}
	d, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return err.Error()
	}
	return d
}
