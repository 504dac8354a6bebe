// Package i18n provides localized strings for generated planners.
//
// Catalogs are TOML files keyed by dotted paths such as
// "calendar.one_letter.monday". The built-in catalogs are embedded; callers
// pick one with [Load], which matches the requested locale against the
// available ones.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/matzehuels/plannergen/pkg/errors"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

//go:embed locales/*.toml
var locales embed.FS

// Translator looks up localized strings.
type Translator interface {
	T(key string) string
}

// Catalog is a flat key → string table.
type Catalog struct {
	locale  string
	strings map[string]string
}

// T returns the string for key, or the key itself if it is missing.
func (c *Catalog) T(key string) string {
	if s, ok := c.strings[key]; ok {
		return s
	}
	return key
}

// Locale returns the catalog's locale tag.
func (c *Catalog) Locale() string {
	return c.locale
}

// Parse reads a TOML catalog.
func Parse(locale string, data []byte) (*Catalog, error) {
	var tree map[string]any
	if _, err := toml.Decode(string(data), &tree); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse catalog %s", locale)
	}
	c := &Catalog{locale: locale, strings: map[string]string{}}
	flatten("", tree, c.strings)
	return c, nil
}

func flatten(prefix string, tree map[string]any, out map[string]string) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch t := v.(type) {
		case map[string]any:
			flatten(key, t, out)
		case string:
			out[key] = t
		default:
			out[key] = fmt.Sprint(t)
		}
	}
}

// Available returns the built-in locale tags, sorted.
func Available() []string {
	entries, _ := locales.ReadDir("locales")
	tags := make([]string, 0, len(entries))
	for _, e := range entries {
		tags = append(tags, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(tags)
	return tags
}

// Load returns the built-in catalog that best matches locale.
// "en-GB" resolves to "en"; an unsupported locale is an error.
func Load(locale string) (*Catalog, error) {
	if locale == "" {
		locale = DefaultLocale
	}

	requested, err := language.Parse(locale)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid locale %q", locale)
	}

	available := Available()
	tags := make([]language.Tag, len(available))
	for i, a := range available {
		tags[i] = language.MustParse(a)
	}

	_, index, confidence := language.NewMatcher(tags).Match(requested)
	if confidence < language.High {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported locale %q (available: %s)",
			locale, strings.Join(available, ", "))
	}

	name := available[index]
	data, err := locales.ReadFile(path.Join("locales", name+".toml"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read catalog %s", name)
	}
	return Parse(name, data)
}

// Map is a Translator backed by a plain map, mostly useful in tests.
type Map map[string]string

// T returns the string for key, or the key itself if it is missing.
func (m Map) T(key string) string {
	if s, ok := m[key]; ok {
		return s
	}
	return key
}
