// Package metadata identifies config files by a human-readable comment
// header instead of hard-coded filenames. A metadata-enabled file starts
// with the literal marker line `# hypr metadata` followed by `# key = value`
// comment lines within the first 64 lines.
package metadata

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// TypeKey is the primary metadata key for config type
	TypeKey = "type"

	// HeaderLine is the required first-line marker for metadata-enabled
	// config files
	HeaderLine = "# hypr metadata"

	// headerScanLines bounds how far into a file the header extends
	headerScanLines = 64
)

// TypeSpec is the metadata contract for selecting config files.
type TypeSpec struct {
	// ConfigType is the logical config type (for example theme, bar,
	// logging, deck)
	ConfigType string

	// Extensions lists allowed file extensions, without leading dot
	Extensions []string
}

// ForType is a convenience constructor for TypeSpec.
func ForType(configType string, extensions ...string) TypeSpec {
	return TypeSpec{ConfigType: configType, Extensions: extensions}
}

// Metadata holds the parsed required header values.
type Metadata struct {
	ConfigType string
}

// ParseHeader parses comment header key/value lines from the first 64
// lines of content. Keys are lowercased, values trimmed and unquoted;
// accepted separators are `=` and `:`. Without the marker first line the
// result is empty.
func ParseHeader(content string) map[string]string {
	out := make(map[string]string)

	lines := strings.Split(content, "\n")
	if len(lines) == 0 {
		return out
	}

	first := strings.TrimSpace(strings.TrimPrefix(lines[0], "\uFEFF"))
	if !strings.EqualFold(first, HeaderLine) {
		return out
	}

	rest := lines[1:]
	if len(rest) > headerScanLines-1 {
		rest = rest[:headerScanLines-1]
	}

	for _, line := range rest {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "#") {
			continue
		}

		body := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		key, value, found := strings.Cut(body, "=")
		if !found {
			key, value, found = strings.Cut(body, ":")
		}
		if !found {
			continue
		}

		value = unquote(strings.TrimSpace(value))
		if value == "" {
			continue
		}
		out[strings.ToLower(strings.TrimSpace(key))] = value
	}

	return out
}

// FromContent parses the required metadata keys from content. The second
// return value is false when the header or the type key is missing.
func FromContent(content string) (Metadata, bool) {
	parsed := ParseHeader(content)
	configType, ok := parsed[TypeKey]
	if !ok {
		return Metadata{}, false
	}
	return Metadata{ConfigType: configType}, true
}

// MatchesSpec reports whether file content matches the expected spec.
func MatchesSpec(content string, spec TypeSpec) bool {
	meta, ok := FromContent(content)
	return ok && meta.ConfigType == spec.ConfigType
}

// FileMatches reports whether a file path matches the extension and
// metadata requirements of spec. Unreadable files never match.
func FileMatches(path string, spec TypeSpec) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if !extensionAllowed(ext, spec.Extensions) {
		return false
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	return MatchesSpec(string(content), spec)
}

func extensionAllowed(ext string, allowed []string) bool {
	for _, candidate := range allowed {
		if strings.EqualFold(ext, candidate) {
			return true
		}
	}
	return false
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
