package metadata_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/hyprconf/pkg/metadata"
	"github.com/arthur-debert/hyprconf/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	spec := metadata.ForType("theme", "conf")

	// A renamed config file deep in the tree is still found
	renamed := testutil.CreateFile(t, dir, "hypr/split/theme-main.conf",
		"# hypr metadata\n# type = theme\n[theme]\nname = \"x\"\n")
	other := testutil.CreateFile(t, dir, "a-theme.conf",
		"# hypr metadata\n# type = theme\n")
	testutil.CreateFile(t, dir, "bar.conf",
		"# hypr metadata\n# type = bar\n")
	testutil.CreateFile(t, dir, "plain.conf", "[theme]\n")

	found := metadata.Discover(dir, spec)

	// Sorted for deterministic behavior
	assert.Equal(t, []string{other, renamed}, found)
}

func TestDiscover_EmptyTree(t *testing.T) {
	found := metadata.Discover(t.TempDir(), metadata.ForType("theme", "conf"))
	assert.Empty(t, found)
}

func TestDiscover_NonexistentRoot(t *testing.T) {
	found := metadata.Discover(filepath.Join(t.TempDir(), "missing"), metadata.ForType("theme", "conf"))
	assert.Empty(t, found)
}

func TestResolvePath_FallbackWins(t *testing.T) {
	dir := t.TempDir()
	spec := metadata.ForType("bar", "conf")

	fallback := testutil.CreateFile(t, dir, "hyprbar.conf",
		"# hypr metadata\n# type = bar\n")
	testutil.CreateFile(t, dir, "custom.conf",
		"# hypr metadata\n# type = bar\n")

	resolved := metadata.ResolvePath(dir, fallback, spec)
	assert.Equal(t, fallback, resolved)
}

func TestResolvePath_DiscoveryWhenFallbackMissing(t *testing.T) {
	dir := t.TempDir()
	spec := metadata.ForType("bar", "conf")

	custom := testutil.CreateFile(t, dir, "custom.conf",
		"# hypr metadata\n# type = bar\n")
	fallback := filepath.Join(dir, "hyprbar.conf")

	resolved := metadata.ResolvePath(dir, fallback, spec)
	assert.Equal(t, custom, resolved)
}

func TestResolvePath_FallbackReturnedWhenNothingMatches(t *testing.T) {
	dir := t.TempDir()
	spec := metadata.ForType("bar", "conf")
	fallback := filepath.Join(dir, "hyprbar.conf")

	resolved := metadata.ResolvePath(dir, fallback, spec)
	assert.Equal(t, fallback, resolved)
}

func TestResolvePathStrict(t *testing.T) {
	dir := t.TempDir()
	spec := metadata.ForType("bar", "conf")
	fallback := filepath.Join(dir, "hyprbar.conf")

	_, ok := metadata.ResolvePathStrict(dir, fallback, spec)
	assert.False(t, ok, "nothing matches, strict resolution reports absence")

	custom := testutil.CreateFile(t, dir, "custom.conf",
		"# hypr metadata\n# type = bar\n")

	resolved, ok := metadata.ResolvePathStrict(dir, fallback, spec)
	require.True(t, ok)
	assert.Equal(t, custom, resolved)
}

func TestResolvePath_FallbackMustMatchSpec(t *testing.T) {
	dir := t.TempDir()
	spec := metadata.ForType("bar", "conf")

	// Fallback exists but carries the wrong type; discovery wins
	fallback := testutil.CreateFile(t, dir, "hyprbar.conf",
		"# hypr metadata\n# type = theme\n")
	custom := testutil.CreateFile(t, dir, "custom.conf",
		"# hypr metadata\n# type = bar\n")

	resolved := metadata.ResolvePath(dir, fallback, spec)
	assert.Equal(t, custom, resolved)
}
