// Package source implements the Hyprland-style `source = "..."` directive:
// parsing directive lines, expanding path expressions (home tokens, ~/,
// globs, base-relative paths), and walking the recursive graph of sourced
// files.
package source

import (
	"strings"
)

// Keyword is the fixed left-hand side of a source directive line.
const Keyword = "source"

// ParseSourceValue parses a `source = ...` directive from a single config
// line. It returns the directive value and true, or "" and false when the
// line is not a source directive. Trailing #-comments are stripped and one
// layer of matching surrounding quotes is removed from the value.
func ParseSourceValue(line string) (string, bool) {
	clean := strings.TrimSpace(stripComment(line))
	if clean == "" {
		return "", false
	}

	lhs, rhs, found := strings.Cut(clean, "=")
	if !found {
		return "", false
	}
	if strings.TrimSpace(lhs) != Keyword {
		return "", false
	}

	value := unquote(strings.TrimSpace(rhs))
	if value == "" {
		return "", false
	}

	return value, true
}

// ExtractSources extracts all `source = ...` directives from content and
// returns the remaining content with directive lines removed. Every other
// line, blanks included, is retained verbatim in original order with a
// trailing newline.
//
// This is useful for TOML configs where `source` is a Hyprland extension
// and should not be deserialized as a TOML key.
func ExtractSources(content string) ([]string, string) {
	var sources []string
	var remaining strings.Builder

	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		// A trailing newline is not an extra blank line
		lines = lines[:n-1]
	}

	for _, line := range lines {
		if value, ok := ParseSourceValue(line); ok {
			sources = append(sources, value)
			continue
		}

		remaining.WriteString(line)
		remaining.WriteString("\n")
	}

	return sources, remaining.String()
}

// stripComment drops everything from the first # on. No escape processing;
// Hyprland config lines do not support escaped hashes.
func stripComment(line string) string {
	if before, _, found := strings.Cut(line, "#"); found {
		return before
	}
	return line
}

// unquote removes one layer of matching surrounding double or single quotes
func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
