package metadata

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/hyprconf/pkg/logging"
)

// Discover recursively finds config files below root that match spec.
// Unreadable directories are skipped. Returned paths are sorted for
// deterministic behavior.
func Discover(root string, spec TypeSpec) []string {
	logger := logging.GetLogger("metadata.discover")

	var matches []string
	stack := []string{root}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			logger.Debug().Err(err).Str("dir", dir).Msg("unreadable directory, skipping")
			continue
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				stack = append(stack, path)
				continue
			}

			if FileMatches(path, spec) {
				matches = append(matches, path)
			}
		}
	}

	sort.Strings(matches)
	return matches
}

// ResolvePath resolves a config path using metadata discovery with a
// deterministic fallback.
//
// Resolution order:
//  1. fallback if it exists and matches the metadata spec
//  2. first metadata-matching file below root
//  3. fallback, even if missing
func ResolvePath(root, fallback string, spec TypeSpec) string {
	if resolved, ok := ResolvePathStrict(root, fallback, spec); ok {
		return resolved
	}
	return fallback
}

// ResolvePathStrict resolves a config path with strict metadata
// enforcement: the second return value is false when no file below root
// satisfies the spec.
func ResolvePathStrict(root, fallback string, spec TypeSpec) (string, bool) {
	if _, err := os.Stat(fallback); err == nil && FileMatches(fallback, spec) {
		return fallback, true
	}

	if found := Discover(root, spec); len(found) > 0 {
		return found[0], true
	}

	return "", false
}
