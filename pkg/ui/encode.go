package ui

import (
	"encoding/json"

	"github.com/arthur-debert/hyprconf/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EncodeDocument serializes a resolved document in the requested format.
// Terminal/text/auto formats encode as TOML, the document's native shape.
func EncodeDocument(doc map[string]interface{}, format Format) ([]byte, error) {
	switch format {
	case FormatTOML, FormatTerminal, FormatText, FormatAuto:
		out, err := toml.Marshal(doc)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrUnsupportedFormat, "failed to encode document as TOML")
		}
		return out, nil
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrUnsupportedFormat, "failed to encode document as JSON")
		}
		return append(out, '\n'), nil
	case FormatYAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrUnsupportedFormat, "failed to encode document as YAML")
		}
		return out, nil
	default:
		return nil, errors.Newf(errors.ErrUnsupportedFormat, "cannot encode document as %s", format)
	}
}
