package ui_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/hyprconf/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    ui.Format
		wantErr bool
	}{
		{"auto", ui.FormatAuto, false},
		{"", ui.FormatAuto, false},
		{"term", ui.FormatTerminal, false},
		{"terminal", ui.FormatTerminal, false},
		{"text", ui.FormatText, false},
		{"plain", ui.FormatText, false},
		{"toml", ui.FormatTOML, false},
		{"json", ui.FormatJSON, false},
		{"yaml", ui.FormatYAML, false},
		{"yml", ui.FormatYAML, false},
		{"TOML", ui.FormatTOML, false},
		{"bogus", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", ui.FormatAuto.String())
	assert.Equal(t, "toml", ui.FormatTOML.String())
	assert.Equal(t, "unknown", ui.Format(99).String())
}

func TestDetectFormat_PipedOutput(t *testing.T) {
	// A regular file is not a terminal
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
}

func TestFormatResolve(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, ui.FormatText, ui.FormatAuto.Resolve(f))
	assert.Equal(t, ui.FormatJSON, ui.FormatJSON.Resolve(f))
}
