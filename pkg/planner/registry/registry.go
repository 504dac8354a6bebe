// Package registry maps template families and section names to component
// factories.
//
// Every section needs three components from one family: a header, a body,
// and the section itself, which owns the page sequence. Each is addressed by
// an identifier built from the camelized family and section names:
//
//	Mos.Components.MonthlyHeader
//	Mos.Components.MonthlyBody
//	Mos.Sections.Monthly
//
// Families add their factories at startup through [Family.Register]; a
// lookup miss is a typed *errors.ComponentNotFoundError. Two raw names that
// camelize to the same identifier (for example "to_do" and "to-do") are
// rejected at registration time.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/matzehuels/plannergen/pkg/config"
	"github.com/matzehuels/plannergen/pkg/errors"
	"github.com/matzehuels/plannergen/pkg/planner/section"
)

// Role is the part a component plays in a section.
type Role string

const (
	RoleHeader  Role = "Header"
	RoleBody    Role = "Body"
	RoleSection Role = "Section"
)

// Roles lists every role in resolution order.
var Roles = []Role{RoleHeader, RoleBody, RoleSection}

// HeaderFactory builds a section's header.
type HeaderFactory func(cfg *config.Config, opts config.SectionConfig) (section.Header, error)

// BodyFactory builds a section's body.
type BodyFactory func(cfg *config.Config, opts config.SectionConfig) (section.Body, error)

// SectionFactory builds the section around an already built header and body.
type SectionFactory func(cfg *config.Config, opts config.SectionConfig, header section.Header, body section.Body) (section.Generator, error)

// Components bundles the three factories of one section type. Nil fields
// are skipped by Register.
type Components struct {
	Header  HeaderFactory
	Body    BodyFactory
	Section SectionFactory
}

// Family is a template family that installs its components.
type Family interface {
	Name() string
	Register(r *Registry) error
}

// Entry describes one registered section type.
type Entry struct {
	Family  string
	Section string
	Roles   []Role
}

// Complete reports whether all three roles are registered.
func (e Entry) Complete() bool {
	return len(e.Roles) == len(Roles)
}

type origin struct {
	family  string
	section string
}

type registration struct {
	origin
	role Role
}

// Registry holds component factories. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	headers  map[string]HeaderFactory
	bodies   map[string]BodyFactory
	sections map[string]SectionFactory
	origins  map[string]registration
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		headers:  map[string]HeaderFactory{},
		bodies:   map[string]BodyFactory{},
		sections: map[string]SectionFactory{},
		origins:  map[string]registration{},
	}
}

// Install creates a registry and lets each family register into it.
func Install(families ...Family) (*Registry, error) {
	r := New()
	for _, f := range families {
		if err := f.Register(r); err != nil {
			return nil, fmt.Errorf("install family %s: %w", f.Name(), err)
		}
	}
	return r, nil
}

// Register installs the non-nil factories of c for (family, name).
func (r *Registry) Register(family, name string, c Components) error {
	if c.Header != nil {
		if err := r.RegisterHeader(family, name, c.Header); err != nil {
			return err
		}
	}
	if c.Body != nil {
		if err := r.RegisterBody(family, name, c.Body); err != nil {
			return err
		}
	}
	if c.Section != nil {
		if err := r.RegisterSection(family, name, c.Section); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister panics if registration fails.
func (r *Registry) MustRegister(family, name string, c Components) {
	if err := r.Register(family, name, c); err != nil {
		panic(err)
	}
}

// RegisterHeader installs a header factory.
func (r *Registry) RegisterHeader(family, name string, f HeaderFactory) error {
	return r.add(family, name, RoleHeader, f == nil, func(id string) { r.headers[id] = f })
}

// RegisterBody installs a body factory.
func (r *Registry) RegisterBody(family, name string, f BodyFactory) error {
	return r.add(family, name, RoleBody, f == nil, func(id string) { r.bodies[id] = f })
}

// RegisterSection installs a section factory.
func (r *Registry) RegisterSection(family, name string, f SectionFactory) error {
	return r.add(family, name, RoleSection, f == nil, func(id string) { r.sections[id] = f })
}

func (r *Registry) add(family, name string, role Role, isNil bool, store func(id string)) error {
	if err := errors.ValidateName("template", family); err != nil {
		return err
	}
	if err := errors.ValidateName("section", name); err != nil {
		return err
	}
	id := Identifier(family, name, role)
	if isNil {
		return errors.New(errors.ErrCodeInvalidInput, "registry: nil factory for %s", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, exists := r.origins[id]; exists {
		if prev.origin == (origin{family, name}) {
			return errors.New(errors.ErrCodeDuplicateComponent, "registry: %s already registered", id)
		}
		return errors.New(errors.ErrCodeDuplicateComponent,
			"registry: %s/%s collides with %s/%s as %s", family, name, prev.family, prev.section, id)
	}
	r.origins[id] = registration{origin{family, name}, role}
	store(id)
	return nil
}

// Header returns the header factory for (family, name).
func (r *Registry) Header(family, name string) (HeaderFactory, error) {
	id := Identifier(family, name, RoleHeader)
	r.mu.RLock()
	f, ok := r.headers[id]
	r.mu.RUnlock()
	if !ok {
		return nil, &errors.ComponentNotFoundError{Identifier: id, Section: name, Family: family}
	}
	return f, nil
}

// Body returns the body factory for (family, name).
func (r *Registry) Body(family, name string) (BodyFactory, error) {
	id := Identifier(family, name, RoleBody)
	r.mu.RLock()
	f, ok := r.bodies[id]
	r.mu.RUnlock()
	if !ok {
		return nil, &errors.ComponentNotFoundError{Identifier: id, Section: name, Family: family}
	}
	return f, nil
}

// Section returns the section factory for (family, name).
func (r *Registry) Section(family, name string) (SectionFactory, error) {
	id := Identifier(family, name, RoleSection)
	r.mu.RLock()
	f, ok := r.sections[id]
	r.mu.RUnlock()
	if !ok {
		return nil, &errors.ComponentNotFoundError{Identifier: id, Section: name, Family: family}
	}
	return f, nil
}

// IDs returns a sorted list of registered identifiers.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.origins))
	for id := range r.origins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Families returns the sorted raw names of registered families.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := map[string]bool{}
	var out []string
	for _, o := range r.origins {
		if !seen[o.family] {
			seen[o.family] = true
			out = append(out, o.family)
		}
	}
	sort.Strings(out)
	return out
}

// Entries lists every registered (family, section) pair with its roles,
// sorted by family then section.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byOrigin := map[origin]*Entry{}
	for _, reg := range r.origins {
		e, ok := byOrigin[reg.origin]
		if !ok {
			e = &Entry{Family: reg.family, Section: reg.section}
			byOrigin[reg.origin] = e
		}
		e.Roles = append(e.Roles, reg.role)
	}

	out := make([]Entry, 0, len(byOrigin))
	for _, e := range byOrigin {
		sort.Slice(e.Roles, func(i, j int) bool { return roleIndex(e.Roles[i]) < roleIndex(e.Roles[j]) })
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Family != out[j].Family {
			return out[i].Family < out[j].Family
		}
		return out[i].Section < out[j].Section
	})
	return out
}

func roleIndex(role Role) int {
	for i, r := range Roles {
		if r == role {
			return i
		}
	}
	return len(Roles)
}

// Identifier builds the identifier of a component.
//
//	Identifier("mos", "daily_notes", RoleBody) == "Mos.Components.DailyNotesBody"
//	Identifier("mos", "daily_notes", RoleSection) == "Mos.Sections.DailyNotes"
func Identifier(family, name string, role Role) string {
	if role == RoleSection {
		return Camelize(family) + ".Sections." + Camelize(name)
	}
	return Camelize(family) + ".Components." + Camelize(name) + string(role)
}

// Camelize converts snake_case or kebab-case to UpperCamelCase. Letters
// after the first of each word keep their case.
func Camelize(s string) string {
	var b strings.Builder
	for _, word := range strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' }) {
		first, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(first))
		b.WriteString(word[size:])
	}
	return b.String()
}
