// Package gitmsg infers a bump kind from a git commit message file.
//
// Inference is a first-match-wins scan of the lowercased message text for
// literal bracket tags, in a fixed priority order. An unreadable or missing
// message file is never an error: inference just reports no match and the
// caller falls back to its default.
package gitmsg

import (
	"os"
	"strings"

	"github.com/verup-dev/verup/internal/bump"
)

// rules maps commit-message tags to bump kinds. Order is the priority
// order: the first tag found anywhere in the message wins, regardless of
// position within the message itself.
var rules = []struct {
	tag  string
	kind bump.Kind
}{
	{"[major]", bump.Major},
	{"[minor]", bump.Minor},
	{"[patch]", bump.Patch},
	{"[preminor]", bump.Preminor},
	{"[prepatch]", bump.Prepatch},
	{"[no-version]", bump.Skip},
}

// Infer scans the commit message file at path for a bump tag. The second
// return is false when the file cannot be read or no tag matches.
func Infer(path string) (bump.Kind, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}

	message := strings.ToLower(string(data))
	for _, rule := range rules {
		if strings.Contains(message, rule.tag) {
			return rule.kind, true
		}
	}
	return 0, false
}
