// Package include loads TOML config files and recursively resolves their
// top-level include directives, deep-merging included documents into the
// including one. True cycles are rejected; diamond-shaped include graphs
// merge normally.
package include

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/hyprconf/pkg/errors"
	"github.com/arthur-debert/hyprconf/pkg/logging"
	"github.com/arthur-debert/hyprconf/pkg/paths"
	"github.com/arthur-debert/hyprconf/pkg/source"
	"github.com/pelletier/go-toml/v2"
)

// DefaultKey is the conventional top-level include key.
const DefaultKey = "include"

// Load reads the TOML file at path and recursively resolves its include
// directives, declared as an array of path expressions under includeKey.
// Included documents are merged in declaration order, later values
// overwriting earlier scalars while tables merge by key.
//
// A file that includes itself through any chain fails with
// errors.ErrCyclicInclude carrying the offending canonical path. Unreadable
// files fail with errors.ErrFileRead and unparsable content with
// errors.ErrConfigParse; both propagate through the whole recursion chain.
// Include targets that do not exist as regular files are skipped, not
// errors.
func Load(path, includeKey, homeDir string) (map[string]interface{}, error) {
	active := make(map[string]struct{})
	return load(path, includeKey, homeDir, active)
}

// load is the recursive worker. active holds the canonical paths currently
// being loaded (ancestors of this call, not everything visited), which is
// what distinguishes a true cycle from a diamond dependency.
func load(path, includeKey, homeDir string, active map[string]struct{}) (map[string]interface{}, error) {
	logger := logging.GetLogger("include")

	canonical := paths.Canonical(path)
	if _, open := active[canonical]; open {
		return nil, errors.Newf(errors.ErrCyclicInclude, "cyclic include: %s", canonical).
			WithDetail("path", canonical)
	}
	active[canonical] = struct{}{}
	// Removed on exit either way so a failed branch does not poison
	// sibling loads of the same file.
	defer delete(active, canonical)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path)
	}

	var doc map[string]interface{}
	if err := toml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}
	if doc == nil {
		doc = make(map[string]interface{})
	}

	baseDir := filepath.Dir(path)
	for _, pattern := range includePatterns(doc, includeKey) {
		for _, target := range source.ResolveTargets(pattern, baseDir, homeDir) {
			info, err := os.Stat(target)
			if err != nil || !info.Mode().IsRegular() {
				// Dangling include references are ignored
				logger.Trace().Str("target", target).Msg("include target missing, skipping")
				continue
			}

			included, err := load(target, includeKey, homeDir, active)
			if err != nil {
				return nil, err
			}
			doc = Merge(doc, included)
		}
	}

	logger.Debug().Str("path", path).Int("keys", len(doc)).Msg("document loaded")
	return doc, nil
}

// includePatterns collects the string elements of the top-level include
// array. Non-string elements are silently skipped; a missing or non-array
// key means no includes.
func includePatterns(doc map[string]interface{}, includeKey string) []string {
	values, ok := doc[includeKey].([]interface{})
	if !ok {
		return nil
	}

	var patterns []string
	for _, value := range values {
		if s, ok := value.(string); ok {
			patterns = append(patterns, s)
		}
	}
	return patterns
}

// Merge combines incoming into base and returns the result. When both
// sides hold tables for a key the tables merge recursively; in every other
// case the incoming value replaces the base value. Tables merge
// additively, scalars and arrays are last-write-wins.
func Merge(base, incoming map[string]interface{}) map[string]interface{} {
	for key, in := range incoming {
		baseTable, baseIsTable := base[key].(map[string]interface{})
		inTable, inIsTable := in.(map[string]interface{})
		if baseIsTable && inIsTable {
			base[key] = Merge(baseTable, inTable)
			continue
		}
		base[key] = in
	}
	return base
}
