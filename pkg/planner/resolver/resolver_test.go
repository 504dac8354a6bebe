package resolver

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"github.com/matzehuels/plannergen/pkg/config"
	perrors "github.com/matzehuels/plannergen/pkg/errors"
	"github.com/matzehuels/plannergen/pkg/planner/registry"
	"github.com/matzehuels/plannergen/pkg/planner/section"
)

// built counts factory calls per family/section/role.
type built map[string]int

func components(family string, calls built) registry.Components {
	return registry.Components{
		Header: func(_ *config.Config, opts config.SectionConfig) (section.Header, error) {
			calls[family+"/"+opts.Name+"/header"]++
			return section.HeaderFunc(func(section.Page) (string, error) { return family + ":", nil }), nil
		},
		Body: func(_ *config.Config, opts config.SectionConfig) (section.Body, error) {
			calls[family+"/"+opts.Name+"/body"]++
			return section.BodyFunc(func(p section.Page) (string, error) { return fmt.Sprint(p), nil }), nil
		},
		Section: func(_ *config.Config, opts config.SectionConfig, h section.Header, b section.Body) (section.Generator, error) {
			calls[family+"/"+opts.Name+"/section"]++
			return section.New(opts.Name, opts, h, b, section.PageSourceFunc(func() ([]section.Page, error) {
				return []section.Page{opts.Name}, nil
			}))
		},
	}
}

func newRegistry(t *testing.T, calls built, entries map[string][]string) *registry.Registry {
	t.Helper()
	r := registry.New()
	for family, names := range entries {
		for _, name := range names {
			if err := r.Register(family, name, components(family, calls)); err != nil {
				t.Fatalf("Register(%s, %s) error = %v", family, name, err)
			}
		}
	}
	return r
}

func sec(name string, enabled *bool, family string) config.SectionConfig {
	return config.SectionConfig{Name: name, EnabledFlag: enabled, TemplateName: family}
}

func flag(b bool) *bool { return &b }

func newConfig(sections ...config.SectionConfig) *config.Config {
	return &config.Config{
		Parameters: config.Parameters{TemplateName: "mos"},
		Sections:   sections,
	}
}

func names(ds []Descriptor) []string {
	var out []string
	for _, d := range ds {
		out = append(out, d.Family+"/"+d.Name)
	}
	return out
}

func TestResolve(t *testing.T) {
	calls := built{}
	reg := newRegistry(t, calls, map[string][]string{
		"mos":   {"title", "monthly", "notes", "todo"},
		"plain": {"notes"},
	})

	cfg := newConfig(
		sec("todo", flag(true), ""),
		sec("title", nil, ""),
		sec("notes", flag(true), "plain"),
		sec("monthly", flag(false), ""),
	)

	ds, err := New(reg, nil).Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if got, want := names(ds), []string{"mos/todo", "plain/notes"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}

	for key := range calls {
		switch key {
		case "mos/title/header", "mos/title/body", "mos/title/section",
			"mos/monthly/header", "mos/monthly/body", "mos/monthly/section":
			t.Errorf("disabled section was constructed: %s", key)
		case "mos/notes/header", "mos/notes/body", "mos/notes/section":
			t.Errorf("family override ignored: %s", key)
		}
	}

	doc, err := ds[1].Section.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if doc.Name != "notes.tex" || doc.Content != "plain:notes" {
		t.Errorf("Generate() = %+v, want header and body from plain", doc)
	}
}

func TestResolveComponentNotFound(t *testing.T) {
	calls := built{}
	reg := newRegistry(t, calls, map[string][]string{"mos": {"monthly"}})

	cfg := newConfig(
		sec("monthly", flag(true), ""),
		sec("weekly", flag(true), ""),
	)

	ds, err := New(reg, nil).Resolve(cfg)
	if ds != nil {
		t.Errorf("Resolve() returned %d descriptors on failure", len(ds))
	}

	var target *perrors.ComponentNotFoundError
	if !errors.As(err, &target) {
		t.Fatalf("Resolve() error = %v, want ComponentNotFoundError", err)
	}
	if target.Section != "weekly" || target.Family != "mos" || target.Identifier != "Mos.Components.WeeklyHeader" {
		t.Errorf("ComponentNotFoundError = %+v", target)
	}
}

func TestResolvePartialFamily(t *testing.T) {
	calls := built{}
	reg := registry.New()
	full := components("mos", calls)
	reg.MustRegister("mos", "daily", registry.Components{Header: full.Header, Body: full.Body})

	_, err := New(reg, nil).Resolve(newConfig(sec("daily", flag(true), "")))

	var target *perrors.ComponentNotFoundError
	if !errors.As(err, &target) || target.Identifier != "Mos.Sections.Daily" {
		t.Fatalf("Resolve() error = %v, want missing Mos.Sections.Daily", err)
	}
	if len(calls) != 0 {
		t.Errorf("components constructed for an unresolvable section: %v", calls)
	}
}

func TestResolveEach(t *testing.T) {
	calls := built{}
	reg := newRegistry(t, calls, map[string][]string{"mos": {"monthly", "notes"}})

	cfg := newConfig(
		sec("monthly", flag(true), ""),
		sec("weekly", flag(true), ""),
		sec("notes", flag(true), ""),
	)

	results, err := New(reg, nil).ResolveEach(cfg)
	if err != nil {
		t.Fatalf("ResolveEach() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("ResolveEach() returned %d results, want 3", len(results))
	}

	for i, want := range []struct {
		name string
		ok   bool
	}{{"monthly", true}, {"weekly", false}, {"notes", true}} {
		res := results[i]
		if res.Name != want.name {
			t.Errorf("results[%d].Name = %q, want %q", i, res.Name, want.name)
		}
		if (res.Err == nil) != want.ok || (res.Descriptor != nil) != want.ok {
			t.Errorf("results[%d] = %+v, want ok=%v", i, res, want.ok)
		}
	}
	if !perrors.Is(results[1].Err, perrors.ErrCodeComponentNotFound) {
		t.Errorf("results[1].Err = %v, want COMPONENT_NOT_FOUND", results[1].Err)
	}
}

func TestResolveFactoryError(t *testing.T) {
	boom := errors.New("boom")
	reg := registry.New()
	c := components("mos", built{})
	c.Body = func(*config.Config, config.SectionConfig) (section.Body, error) { return nil, boom }
	reg.MustRegister("mos", "notes", c)

	_, err := New(reg, nil).Resolve(newConfig(sec("notes", flag(true), "")))
	if !errors.Is(err, boom) {
		t.Errorf("Resolve() error = %v, want %v", err, boom)
	}
}

func TestResolveNameCollision(t *testing.T) {
	reg := newRegistry(t, built{}, map[string][]string{"mos": {"to_do"}})

	cfg := newConfig(
		sec("to_do", flag(true), ""),
		sec("to-do", flag(false), ""),
	)

	if _, err := New(reg, nil).Resolve(cfg); !perrors.Is(err, perrors.ErrCodeInvalidConfig) {
		t.Errorf("Resolve() error = %v, want INVALID_CONFIG for colliding names", err)
	}
}

func TestResolveEnabledProperty(t *testing.T) {
	pool := []string{"title", "monthly", "weekly", "daily", "notes", "todo", "year", "index"}
	reg := newRegistry(t, built{}, map[string][]string{"mos": pool})
	rng := rand.New(rand.NewSource(7))

	for iter := 0; iter < 200; iter++ {
		perm := rng.Perm(len(pool))
		var sections []config.SectionConfig
		var want []string
		for _, idx := range perm[:rng.Intn(len(pool)+1)] {
			var enabled *bool
			switch rng.Intn(3) {
			case 0:
				enabled = flag(true)
				want = append(want, "mos/"+pool[idx])
			case 1:
				enabled = flag(false)
			}
			sections = append(sections, sec(pool[idx], enabled, ""))
		}

		ds, err := New(reg, nil).Resolve(newConfig(sections...))
		if err != nil {
			t.Fatalf("iteration %d: Resolve() error = %v", iter, err)
		}
		if got := names(ds); !reflect.DeepEqual(got, want) {
			t.Fatalf("iteration %d: Resolve() = %v, want %v", iter, got, want)
		}
	}
}
