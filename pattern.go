package main

import (
	"regexp"
	"strings"
)

// compilePattern turns a "*"-only glob into a predicate matching whole file
// names. Everything except "*" is taken literally.
func compilePattern(pattern string) func(name string) bool {
	if pattern == "*" {
		return func(string) bool { return true }
	}

	parts := strings.Split(pattern, "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	re := regexp.MustCompile("^" + strings.Join(parts, ".*") + "$")
	return re.MatchString
}

func matchPattern(fileName, pattern string) bool {
	return compilePattern(pattern)(fileName)
}
