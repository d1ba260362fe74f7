package ui_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/arthur-debert/hyprconf/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleDoc() map[string]interface{} {
	return map[string]interface{}{
		"style": map[string]interface{}{
			"bg": "#111111",
			"fg": "#ffffff",
		},
		"layout": map[string]interface{}{
			"strategy": "grid",
		},
	}
}

func TestEncodeDocument_TOML(t *testing.T) {
	out, err := ui.EncodeDocument(sampleDoc(), ui.FormatTOML)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "[style]")
	assert.Contains(t, s, "bg = '#111111'")
	assert.Contains(t, s, "[layout]")
}

func TestEncodeDocument_JSON(t *testing.T) {
	out, err := ui.EncodeDocument(sampleDoc(), ui.FormatJSON)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))

	style := decoded["style"].(map[string]interface{})
	assert.Equal(t, "#111111", style["bg"])
	assert.True(t, strings.HasSuffix(string(out), "\n"))
}

func TestEncodeDocument_YAML(t *testing.T) {
	out, err := ui.EncodeDocument(sampleDoc(), ui.FormatYAML)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &decoded))

	layout := decoded["layout"].(map[string]interface{})
	assert.Equal(t, "grid", layout["strategy"])
}

func TestEncodeDocument_TextFallsBackToTOML(t *testing.T) {
	out, err := ui.EncodeDocument(sampleDoc(), ui.FormatText)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[style]")
}

func TestRenderPathList(t *testing.T) {
	paths := []string{"/a/one.conf", "/a/two.conf"}

	plain := ui.RenderPathList("Files:", paths, ui.FormatText)
	assert.Equal(t, "/a/one.conf\n/a/two.conf\n", plain)

	styled := ui.RenderPathList("Files:", paths, ui.FormatTerminal)
	assert.Contains(t, styled, "Files:")
	assert.Contains(t, styled, "one.conf")
}

func TestRenderResolvedPath(t *testing.T) {
	assert.Equal(t, "/a/x.conf\n", ui.RenderResolvedPath("/a/x.conf", true, ui.FormatText))

	styled := ui.RenderResolvedPath("/a/x.conf", false, ui.FormatTerminal)
	assert.Contains(t, styled, "x.conf")
}
