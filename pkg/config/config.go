// Package config loads hyprconf's own settings: embedded defaults layered
// under an optional hyprconf.toml in the config directory and HYPRCONF_*
// environment variables. These settings tune the tool (include key,
// discovery extensions, output format); they are unrelated to the config
// files being resolved.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/hyprconf/pkg/errors"
	"github.com/arthur-debert/hyprconf/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// ConfigFileName is the settings file looked up in the config directory.
const ConfigFileName = "hyprconf.toml"

// EnvPrefix namespaces the environment variable overrides.
const EnvPrefix = "HYPRCONF_"

// Settings holds the tool's resolved configuration.
type Settings struct {
	Resolver  Resolver  `koanf:"resolver"`
	Discovery Discovery `koanf:"discovery"`
	Output    Output    `koanf:"output"`
}

// Resolver tunes the include/source resolution engine.
type Resolver struct {
	// IncludeKey is the top-level TOML key holding include expressions
	IncludeKey string `koanf:"include_key"`
}

// Discovery tunes metadata-based config file discovery.
type Discovery struct {
	// Extensions are the candidate file extensions, without leading dot
	Extensions []string `koanf:"extensions"`

	// Types are the known logical config types
	Types []string `koanf:"types"`
}

// Output tunes CLI output rendering.
type Output struct {
	Format string `koanf:"format"`
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// Load builds Settings from defaults, the optional config file, and
// environment variables, in increasing precedence.
func Load() (*Settings, error) {
	k := koanf.New(".")

	// 1. Hard fallbacks, then embedded defaults
	if err := k.Load(confmap.Provider(builtinFallbacks(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load built-in fallbacks")
	}
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	// 2. Config file, when present
	configPath := filepath.Join(paths.ConfigDir(), ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", configPath)
		}
	}

	// 3. Environment variables: HYPRCONF_RESOLVER_INCLUDE_KEY etc.
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var settings Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &settings,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &settings, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal settings")
	}

	return &settings, nil
}

// builtinFallbacks guards against an embedded defaults file that drops a
// key; the unmarshal result always has usable values.
func builtinFallbacks() map[string]interface{} {
	return map[string]interface{}{
		"resolver.include_key": "include",
		"discovery.extensions": []string{"conf", "toml"},
		"output.format":        "auto",
	}
}
