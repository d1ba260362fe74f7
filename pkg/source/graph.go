package source

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/hyprconf/pkg/logging"
	"github.com/arthur-debert/hyprconf/pkg/paths"
)

// CollectGraph collects the recursive `source = ...` graph starting from
// root, returning every reachable file once in visitation order.
//
// Cycles are handled by deduplication on canonical paths; each file appears
// at most once. Unreadable files are recorded but not descended into, so a
// single broken reference never fails the walk. The output order follows
// the work stack (last pushed, first visited) and is not sorted; callers
// needing determinism must sort.
func CollectGraph(root, homeDir string) []string {
	logger := logging.GetLogger("source.graph")

	var out []string
	stack := []string{root}
	seen := make(map[string]struct{})

	for len(stack) > 0 {
		file := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		canonical := paths.Canonical(file)
		if _, visited := seen[canonical]; visited {
			logger.Trace().Str("path", file).Msg("already visited, skipping")
			continue
		}
		seen[canonical] = struct{}{}

		out = append(out, file)

		content, err := os.ReadFile(file)
		if err != nil {
			// Best-effort traversal: the file still counts as visited
			logger.Debug().Err(err).Str("path", file).Msg("unreadable file, not descending")
			continue
		}

		baseDir := filepath.Dir(file)
		for _, line := range strings.Split(string(content), "\n") {
			value, ok := ParseSourceValue(line)
			if !ok {
				continue
			}
			for _, resolved := range ResolveTargets(value, baseDir, homeDir) {
				if isRegularFile(resolved) {
					stack = append(stack, resolved)
				}
			}
		}
	}

	logger.Debug().Str("root", root).Int("files", len(out)).Msg("source graph collected")
	return out
}
