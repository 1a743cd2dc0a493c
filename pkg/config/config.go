// Package config loads payload's configuration: assembly settings plus the
// per-platform filter rules. Built-in defaults ship embedded in the binary;
// a project-level payload.toml or payload.yaml layers on top. Filter rule
// patterns are compiled while loading, so a malformed pattern fails the run
// before any traversal work begins.
package config

import (
	_ "embed"
	"errors"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	payloaderrors "github.com/arthur-debert/payload/pkg/errors"
	"github.com/arthur-debert/payload/pkg/filter"
	"github.com/arthur-debert/payload/pkg/paths"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// GetDefaultConfigContent returns the embedded default configuration.
func GetDefaultConfigContent() string {
	return string(defaultConfig)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// AssembleConfig holds the assembly pipeline settings.
type AssembleConfig struct {
	SkipEmptyPackages bool   `koanf:"skip_empty_packages"`
	Resolver          string `koanf:"resolver"`
	Platform          string `koanf:"platform"`
	SourceRoot        string `koanf:"source_root"`
	Prefix            string `koanf:"prefix"`
}

// Config is the loaded and validated configuration.
type Config struct {
	Assemble AssembleConfig
	Filters  map[string][]filter.Rule

	compiled map[string][]filter.CompiledRule
}

// Load reads configuration in three layers: embedded defaults, then a
// per-user config from the XDG config directory, then the project
// configuration found in projectDir (empty string: current directory).
// All filter rule sets are compiled eagerly; pattern errors surface here,
// not mid-walk.
func Load(projectDir string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, payloaderrors.Wrap(err, payloaderrors.ErrConfigLoad, "failed to load built-in defaults")
	}

	if path := paths.New().FindUserConfig(); path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, payloaderrors.Wrapf(err, payloaderrors.ErrConfigParse,
				"failed to load user config from %s", path)
		}
	}

	if projectDir == "" {
		projectDir = "."
	}
	if path := paths.FindProjectConfig(projectDir); path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, payloaderrors.Wrapf(err, payloaderrors.ErrConfigParse,
				"failed to load project config from %s", path)
		}
	}

	return fromKoanf(k)
}

// parserFor picks the koanf parser matching the file extension.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func fromKoanf(k *koanf.Koanf) (*Config, error) {
	cfg := &Config{
		Filters:  make(map[string][]filter.Rule),
		compiled: make(map[string][]filter.CompiledRule),
	}

	if err := k.Unmarshal("assemble", &cfg.Assemble); err != nil {
		return nil, payloaderrors.Wrap(err, payloaderrors.ErrConfigParse, "invalid [assemble] section")
	}

	if err := k.Unmarshal("filters", &cfg.Filters); err != nil {
		return nil, payloaderrors.Wrap(err, payloaderrors.ErrConfigParse, "invalid [filters] section")
	}

	for platform, rules := range cfg.Filters {
		compiled, err := filter.Compile(rules)
		if err != nil {
			return nil, payloaderrors.Wrapf(err, payloaderrors.ErrConfigParse,
				"filters for platform %q", platform)
		}
		cfg.compiled[platform] = compiled
	}

	return cfg, nil
}

// RulesFor returns the compiled filter rules for a platform. Unknown
// platforms have no rules, which is valid: nothing gets filtered.
func (c *Config) RulesFor(platform string) []filter.CompiledRule {
	return c.compiled[platform]
}

// Platforms lists the platforms with configured filter rules.
func (c *Config) Platforms() []string {
	names := make([]string, 0, len(c.Filters))
	for name := range c.Filters {
		names = append(names, name)
	}
	return names
}
