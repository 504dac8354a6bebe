// Package config models the planner configuration.
//
// A configuration has global [Parameters] and an ordered list of sections:
//
//	[parameters]
//	template_name = "mos"
//	year = 2026
//	weekday_start = "monday"
//
//	[sections.monthly]
//	enabled = true
//
//	[sections.notes]
//	enabled = true
//	template_name = "plain"
//	pages = 20
//
// Sections keep the order they are written in; that order decides the order
// of generated documents. A section without `enabled = true` is disabled.
// Both TOML and YAML are accepted, chosen by file extension.
//
// The configuration is validated once, when it is loaded, and is read-only
// afterwards.
package config

import (
	"strings"
	"time"

	"github.com/matzehuels/plannergen/pkg/calendar"
	"github.com/matzehuels/plannergen/pkg/errors"
	"github.com/matzehuels/plannergen/pkg/i18n"
)

// Defaults applied to missing parameters.
const (
	DefaultTemplateName = "mos"
	DefaultWeekdayStart = "monday"
	DefaultLocale       = "en"
	DefaultHand         = HandRight
)

// Hand is the writing hand; left-handed layouts mirror some pages.
type Hand string

const (
	HandLeft  Hand = "left"
	HandRight Hand = "right"
)

// Recognized section keys. Everything else lands in SectionConfig.Params.
const (
	keyEnabled      = "enabled"
	keyTemplateName = "template_name"
)

// Parameters are the global settings shared by every section.
type Parameters struct {
	TemplateName string `toml:"template_name" yaml:"template_name"`
	Year         int    `toml:"year" yaml:"year"`
	WeekdayStart string `toml:"weekday_start" yaml:"weekday_start"`
	Locale       string `toml:"locale" yaml:"locale"`
	Hand         Hand   `toml:"hand" yaml:"hand"`
	ShowFrames   bool   `toml:"show_frames" yaml:"show_frames"`
	ShowLinks    bool   `toml:"show_links" yaml:"show_links"`

	weekday time.Weekday
}

// Weekday returns the parsed week start. Valid after Validate.
func (p Parameters) Weekday() time.Weekday {
	return p.weekday
}

// SectionConfig holds one section's options.
type SectionConfig struct {
	Name string

	// EnabledFlag is the raw flag; nil when the key is absent or not a bool.
	EnabledFlag *bool

	// TemplateName overrides Parameters.TemplateName when non-empty.
	TemplateName string

	// Params holds every other key.
	Params Params
}

// Enabled reports whether the section is switched on. A missing flag means
// disabled.
func (s SectionConfig) Enabled() bool {
	return s.EnabledFlag != nil && *s.EnabledFlag
}

// Config is a complete, validated planner configuration.
type Config struct {
	Parameters Parameters
	Sections   []SectionConfig

	// Warnings collects non-fatal problems found while loading, such as an
	// `enabled` key that is not a boolean.
	Warnings []string
}

// Default returns a configuration with default parameters and no sections.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		panic(err)
	}
	return c
}

// Section returns the section with the given name.
func (c *Config) Section(name string) (SectionConfig, bool) {
	for _, s := range c.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return SectionConfig{}, false
}

// EnabledSections returns the enabled sections in configuration order.
func (c *Config) EnabledSections() []SectionConfig {
	var out []SectionConfig
	for _, s := range c.Sections {
		if s.Enabled() {
			out = append(out, s)
		}
	}
	return out
}

// TemplateFor returns the template family in effect for s.
func (c *Config) TemplateFor(s SectionConfig) string {
	if s.TemplateName != "" {
		return s.TemplateName
	}
	return c.Parameters.TemplateName
}

// SetEnabled returns a copy of c with the named sections enabled and every
// other section disabled. Unknown names are an error.
func (c *Config) SetEnabled(names []string) (*Config, error) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := c.Section(n); !ok {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown section %q", n)
		}
		want[n] = true
	}

	out := *c
	out.Sections = make([]SectionConfig, len(c.Sections))
	for i, s := range c.Sections {
		enabled := want[s.Name]
		s.EnabledFlag = &enabled
		out.Sections[i] = s
	}
	return &out, nil
}

func (c *Config) applyDefaults() {
	p := &c.Parameters
	if p.TemplateName == "" {
		p.TemplateName = DefaultTemplateName
	}
	if p.Year == 0 {
		p.Year = time.Now().Year()
	}
	if p.WeekdayStart == "" {
		p.WeekdayStart = DefaultWeekdayStart
	}
	if p.Locale == "" {
		p.Locale = DefaultLocale
	}
	if p.Hand == "" {
		p.Hand = DefaultHand
	}
}

// Validate checks required fields and parses derived values.
func (c *Config) Validate() error {
	p := &c.Parameters

	if err := errors.ValidateName("template", p.TemplateName); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parameters.template_name")
	}
	if p.Year < 1 || p.Year > 9999 {
		return errors.New(errors.ErrCodeInvalidConfig, "parameters.year out of range: %d", p.Year)
	}
	wd, err := calendar.ParseWeekday(p.WeekdayStart)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parameters.weekday_start")
	}
	p.weekday = wd

	if p.Hand != HandLeft && p.Hand != HandRight {
		return errors.New(errors.ErrCodeInvalidConfig, "parameters.hand must be left or right, got %q", p.Hand)
	}

	if _, err := i18n.Load(p.Locale); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parameters.locale")
	}

	seen := make(map[string]bool, len(c.Sections))
	for _, s := range c.Sections {
		if err := errors.ValidateName("section", s.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "sections")
		}
		if seen[s.Name] {
			return errors.New(errors.ErrCodeInvalidConfig, "section %q defined twice", s.Name)
		}
		seen[s.Name] = true

		if s.TemplateName != "" {
			if err := errors.ValidateName("template", s.TemplateName); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidConfig, err, "sections.%s.template_name", s.Name)
			}
		}
	}

	return nil
}

// newSection splits raw section options into recognized keys and Params.
func newSection(name string, raw map[string]any) (SectionConfig, []string) {
	s := SectionConfig{Name: name, Params: Params{}}
	var warnings []string

	for k, v := range raw {
		switch k {
		case keyEnabled:
			if b, ok := v.(bool); ok {
				s.EnabledFlag = &b
			} else {
				warnings = append(warnings, "sections."+name+".enabled is not a boolean; section disabled")
			}
		case keyTemplateName:
			if str, ok := v.(string); ok {
				s.TemplateName = strings.TrimSpace(str)
			} else {
				warnings = append(warnings, "sections."+name+".template_name is not a string; ignored")
			}
		default:
			s.Params[k] = v
		}
	}

	return s, warnings
}
