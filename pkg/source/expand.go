package source

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// HasGlobChars reports whether the value contains glob wildcard syntax.
func HasGlobChars(value string) bool {
	return strings.ContainsAny(value, "*?[")
}

// ExpandExpression expands a source expression into an absolute or
// base-relative path. Pure string/path manipulation; no filesystem access.
//
// Supports:
//   - ${HOME} and $HOME
//   - ~/...
//   - relative paths resolved from baseDir
func ExpandExpression(value, baseDir, homeDir string) string {
	out := strings.TrimSpace(value)

	out = strings.ReplaceAll(out, "${HOME}", homeDir)
	out = strings.ReplaceAll(out, "$HOME", homeDir)

	// ~/ takes precedence over relative resolution
	if rest, ok := strings.CutPrefix(out, "~/"); ok {
		return filepath.Join(homeDir, rest)
	}

	if filepath.IsAbs(out) {
		return out
	}

	return filepath.Join(baseDir, out)
}

// ResolveTargets resolves one source expression to concrete file targets.
//
// Non-glob values always return a single path, even when the file does not
// exist. Glob values return all currently-existing regular files matching
// the pattern, in evaluator order; a malformed pattern yields no targets
// rather than an error.
func ResolveTargets(value, baseDir, homeDir string) []string {
	expanded := ExpandExpression(value, baseDir, homeDir)

	if !HasGlobChars(expanded) {
		return []string{expanded}
	}

	matches, err := doublestar.FilepathGlob(expanded)
	if err != nil {
		return nil
	}

	var targets []string
	for _, match := range matches {
		if isRegularFile(match) {
			targets = append(targets, match)
		}
	}
	return targets
}

// ExpressionMatchesPath reports whether target is covered by the source
// expression. Glob expressions are matched as patterns (malformed pattern
// matches nothing); literal expressions require exact path equality.
func ExpressionMatchesPath(value, baseDir, homeDir, target string) bool {
	expanded := ExpandExpression(value, baseDir, homeDir)

	if HasGlobChars(expanded) {
		matched, err := doublestar.PathMatch(expanded, target)
		if err != nil {
			return false
		}
		return matched
	}

	return expanded == target
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
