// Package resolver builds section descriptors from a configuration.
//
// For every enabled section, in configuration order, the resolver picks the
// effective template family (the section's template_name, else
// parameters.template_name) and looks up the header, body and section
// factories of that family. All three lookups happen before anything is
// constructed, so a section with a missing component never gets a
// half-built descriptor. Disabled sections are never looked up.
package resolver

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plannergen/pkg/config"
	"github.com/matzehuels/plannergen/pkg/errors"
	"github.com/matzehuels/plannergen/pkg/planner/registry"
	"github.com/matzehuels/plannergen/pkg/planner/section"
)

// Descriptor is a fully resolved section.
type Descriptor struct {
	Name    string
	Family  string
	Options config.SectionConfig
	Header  section.Header
	Body    section.Body
	Section section.Generator
}

// Result is the outcome of resolving one section. Exactly one of
// Descriptor and Err is set.
type Result struct {
	Name       string
	Family     string
	Descriptor *Descriptor
	Err        error
}

// Resolver resolves sections against a registry.
type Resolver struct {
	registry *registry.Registry
	logger   *log.Logger
}

// New creates a resolver. A nil logger discards output.
func New(reg *registry.Registry, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Resolver{registry: reg, logger: logger}
}

// Resolve returns one descriptor per enabled section, in configuration
// order. The first failure aborts resolution and no descriptor is returned.
func (r *Resolver) Resolve(cfg *config.Config) ([]Descriptor, error) {
	results, err := r.ResolveEach(cfg)
	if err != nil {
		return nil, err
	}

	out := make([]Descriptor, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			return nil, res.Err
		}
		out = append(out, *res.Descriptor)
	}
	return out, nil
}

// ResolveEach resolves every enabled section independently so a caller can
// report failures per section. The returned error covers configuration-wide
// problems only, such as two section names that would share identifiers.
func (r *Resolver) ResolveEach(cfg *config.Config) ([]Result, error) {
	if err := checkCollisions(cfg.Sections); err != nil {
		return nil, err
	}

	enabled := cfg.EnabledSections()
	results := make([]Result, 0, len(enabled))
	for _, opts := range enabled {
		family := cfg.TemplateFor(opts)
		res := Result{Name: opts.Name, Family: family}

		d, err := r.resolve(cfg, family, opts)
		if err != nil {
			r.logger.Debug("section not resolved", "section", opts.Name, "family", family, "err", err)
			res.Err = err
		} else {
			r.logger.Debug("section resolved", "section", opts.Name, "family", family)
			res.Descriptor = d
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Resolver) resolve(cfg *config.Config, family string, opts config.SectionConfig) (*Descriptor, error) {
	newHeader, err := r.registry.Header(family, opts.Name)
	if err != nil {
		return nil, err
	}
	newBody, err := r.registry.Body(family, opts.Name)
	if err != nil {
		return nil, err
	}
	newSection, err := r.registry.Section(family, opts.Name)
	if err != nil {
		return nil, err
	}

	header, err := newHeader(cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("section %s: build header: %w", opts.Name, err)
	}
	body, err := newBody(cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("section %s: build body: %w", opts.Name, err)
	}
	sec, err := newSection(cfg, opts, header, body)
	if err != nil {
		return nil, fmt.Errorf("section %s: build section: %w", opts.Name, err)
	}

	return &Descriptor{
		Name:    opts.Name,
		Family:  family,
		Options: opts,
		Header:  header,
		Body:    body,
		Section: sec,
	}, nil
}

// checkCollisions rejects section names that differ but camelize to the same
// identifier, enabled or not.
func checkCollisions(sections []config.SectionConfig) error {
	seen := make(map[string]string, len(sections))
	for _, s := range sections {
		key := registry.Camelize(s.Name)
		if prev, ok := seen[key]; ok && prev != s.Name {
			return errors.New(errors.ErrCodeInvalidConfig,
				"sections %q and %q both resolve to %s", prev, s.Name, key)
		}
		seen[key] = s.Name
	}
	return nil
}
