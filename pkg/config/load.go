package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/plannergen/pkg/errors"
)

// Format is a configuration file format.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidConfig, "unsupported config file type %q (want .toml, .yaml or .yml)", path)
}

// Load reads, defaults and validates the configuration at path.
func Load(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config")
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
	}

	return Parse(data, format)
}

// Parse decodes data in the given format, then applies defaults and
// validates the result.
func Parse(data []byte, format Format) (*Config, error) {
	var (
		cfg *Config
		err error
	)

	switch format {
	case FormatTOML:
		cfg, err = parseTOML(data)
	case FormatYAML:
		cfg, err = parseYAML(data)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}

	sort.Strings(cfg.Warnings)
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type tomlFile struct {
	Parameters Parameters                `toml:"parameters"`
	Sections   map[string]map[string]any `toml:"sections"`
}

func parseTOML(data []byte) (*Config, error) {
	var raw tomlFile
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse toml")
	}

	for _, key := range md.Undecoded() {
		if len(key) > 0 && key[0] == "sections" {
			continue
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", key.String())
	}

	cfg := &Config{Parameters: raw.Parameters}
	seen := map[string]bool{}
	for _, key := range md.Keys() {
		if len(key) < 2 || key[0] != "sections" || seen[key[1]] {
			continue
		}
		name := key[1]
		seen[name] = true

		s, warnings := newSection(name, raw.Sections[name])
		cfg.Sections = append(cfg.Sections, s)
		cfg.Warnings = append(cfg.Warnings, warnings...)
	}

	return cfg, nil
}

type yamlFile struct {
	Parameters Parameters `yaml:"parameters"`
	Sections   yaml.Node  `yaml:"sections"`
}

func parseYAML(data []byte) (*Config, error) {
	var raw yamlFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse yaml")
	}

	cfg := &Config{Parameters: raw.Parameters}

	switch raw.Sections.Kind {
	case 0:
		return cfg, nil
	case yaml.MappingNode:
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "sections must be a mapping (line %d)", raw.Sections.Line)
	}

	content := raw.Sections.Content
	for i := 0; i+1 < len(content); i += 2 {
		name := content[i].Value

		var opts map[string]any
		if err := content[i+1].Decode(&opts); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "sections.%s", name)
		}

		s, warnings := newSection(name, opts)
		cfg.Sections = append(cfg.Sections, s)
		cfg.Warnings = append(cfg.Warnings, warnings...)
	}

	return cfg, nil
}
