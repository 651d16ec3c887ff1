package testutils

import (
	"fmt"
	"regexp"
	"strconv"
)

// FindOptionString returns the value of a `# option:name: value` line in source.
func FindOptionString(t TestingT, optionName, source string) string {
	t.Helper()

	pattern := fmt.Sprintf("(?m)^# option:%s:\\s*([^\\s]+)$", regexp.QuoteMeta(optionName))
	re, err := regexp.Compile(pattern)
	if err != nil {
		t.Fatal(err)
	}

	ss := re.FindStringSubmatch(source)
	if len(ss) != 2 {
		t.Logf("option %s value is not found", optionName)
		return ""
	}

	return ss[1]
}

func FindOptionInt(t TestingT, optionName, source string) int {
	t.Helper()

	s := FindOptionString(t, optionName, source)
	if s == "" {
		return 0
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		t.Fatalf("option %s is not a number: %s", optionName, s)
	}

	return v
}
