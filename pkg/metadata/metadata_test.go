package metadata_test

import (
	"testing"

	"github.com/arthur-debert/hyprconf/pkg/metadata"
	"github.com/arthur-debert/hyprconf/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    map[string]string
	}{
		{
			name:    "basic_header",
			content: "# hypr metadata\n# type = bar\n\n[layout]\nleft = 33\n",
			want:    map[string]string{"type": "bar"},
		},
		{
			name:    "colon_separator",
			content: "# hypr metadata\n# type: theme\n",
			want:    map[string]string{"type": "theme"},
		},
		{
			name:    "quoted_value_and_mixed_case_key",
			content: "# hypr metadata\n# Type = \"deck\"\n# name = 'main'\n",
			want:    map[string]string{"type": "deck", "name": "main"},
		},
		{
			name:    "marker_case_insensitive",
			content: "# HYPR METADATA\n# type = bar\n",
			want:    map[string]string{"type": "bar"},
		},
		{
			name:    "bom_tolerated",
			content: "\uFEFF# hypr metadata\n# type = bar\n",
			want:    map[string]string{"type": "bar"},
		},
		{
			name:    "missing_marker",
			content: "# type = bar\n",
			want:    map[string]string{},
		},
		{
			name:    "empty_content",
			content: "",
			want:    map[string]string{},
		},
		{
			name:    "empty_values_skipped",
			content: "# hypr metadata\n# type =\n# keep = yes\n",
			want:    map[string]string{"keep": "yes"},
		},
		{
			name:    "non_comment_lines_ignored",
			content: "# hypr metadata\ntype = bar\n# type = theme\n",
			want:    map[string]string{"type": "theme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, metadata.ParseHeader(tt.content))
		})
	}
}

func TestParseHeader_ScanLimit(t *testing.T) {
	content := "# hypr metadata\n"
	for i := 0; i < 70; i++ {
		content += "# filler: line\n"
	}
	content += "# late = value\n"

	parsed := metadata.ParseHeader(content)

	// Keys past the first 64 lines are not part of the header
	assert.NotContains(t, parsed, "late")
	assert.Equal(t, "line", parsed["filler"])
}

func TestFromContent(t *testing.T) {
	meta, ok := metadata.FromContent("# hypr metadata\n# type = theme\n")
	require.True(t, ok)
	assert.Equal(t, "theme", meta.ConfigType)

	_, ok = metadata.FromContent("# hypr metadata\n# name = x\n")
	assert.False(t, ok, "missing type key should not produce metadata")
}

func TestMatchesSpec(t *testing.T) {
	spec := metadata.ForType("theme", "conf")

	assert.True(t, metadata.MatchesSpec("# hypr metadata\n# type = theme\n", spec))
	assert.False(t, metadata.MatchesSpec("# hypr metadata\n# type = bar\n", spec))
	assert.False(t, metadata.MatchesSpec("[theme]\nname = \"x\"\n", spec))
}

func TestFileMatches(t *testing.T) {
	dir := t.TempDir()
	spec := metadata.ForType("theme", "conf", "toml")

	matching := testutil.CreateFile(t, dir, "any-name.conf",
		"# hypr metadata\n# type = theme\n")
	wrongType := testutil.CreateFile(t, dir, "bar.conf",
		"# hypr metadata\n# type = bar\n")
	wrongExt := testutil.CreateFile(t, dir, "theme.txt",
		"# hypr metadata\n# type = theme\n")
	upperExt := testutil.CreateFile(t, dir, "theme.CONF",
		"# hypr metadata\n# type = theme\n")

	assert.True(t, metadata.FileMatches(matching, spec))
	assert.False(t, metadata.FileMatches(wrongType, spec))
	assert.False(t, metadata.FileMatches(wrongExt, spec))
	assert.True(t, metadata.FileMatches(upperExt, spec), "extension match is case-insensitive")
	assert.False(t, metadata.FileMatches(dir+"/nonexistent.conf", spec))
}
