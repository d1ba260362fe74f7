package ui

import (
	"fmt"
	"strings"
)

// RenderPathList renders a list of file paths under a title. Terminal
// format gets styled output; every other format falls back to one plain
// path per line.
func RenderPathList(title string, paths []string, format Format) string {
	var b strings.Builder

	switch format {
	case FormatTerminal:
		b.WriteString(TitleStyle.Render(title))
		b.WriteString("\n")
		for _, path := range paths {
			fmt.Fprintf(&b, "  %s %s\n", ItemIndicator, PathStyle.Render(path))
		}
	default:
		for _, path := range paths {
			b.WriteString(path)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderResolvedPath renders a single resolution result, flagged when the
// path does not satisfy the requested metadata.
func RenderResolvedPath(path string, matched bool, format Format) string {
	if format != FormatTerminal {
		return path + "\n"
	}

	indicator := SuccessIndicator
	if !matched {
		indicator = ErrorIndicator
	}
	return fmt.Sprintf("%s %s\n", indicator, PathStyle.Render(path))
}
