package registry

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/matzehuels/plannergen/pkg/config"
	perrors "github.com/matzehuels/plannergen/pkg/errors"
	"github.com/matzehuels/plannergen/pkg/planner/section"
)

func stubComponents() Components {
	return Components{
		Header: func(*config.Config, config.SectionConfig) (section.Header, error) {
			return section.HeaderFunc(func(section.Page) (string, error) { return "h", nil }), nil
		},
		Body: func(*config.Config, config.SectionConfig) (section.Body, error) {
			return section.BodyFunc(func(section.Page) (string, error) { return "b", nil }), nil
		},
		Section: func(_ *config.Config, opts config.SectionConfig, h section.Header, b section.Body) (section.Generator, error) {
			return section.New(opts.Name, opts, h, b, section.PageSourceFunc(func() ([]section.Page, error) {
				return []section.Page{1}, nil
			}))
		},
	}
}

func TestCamelize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"monthly", "Monthly"},
		{"daily_notes", "DailyNotes"},
		{"to-do", "ToDo"},
		{"mos", "Mos"},
		{"MonthsOnSides", "MonthsOnSides"},
		{"weekly_iPad", "WeeklyIPad"},
		{"notes2", "Notes2"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Camelize(tt.in); got != tt.want {
				t.Errorf("Camelize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleHeader, "Mos.Components.DailyNotesHeader"},
		{RoleBody, "Mos.Components.DailyNotesBody"},
		{RoleSection, "Mos.Sections.DailyNotes"},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := Identifier("mos", "daily_notes", tt.role); got != tt.want {
				t.Errorf("Identifier() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegisterAndLookup(t *testing.T) {
	r := New()
	if err := r.Register("mos", "notes", stubComponents()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, err := r.Header("mos", "notes"); err != nil {
		t.Errorf("Header() error = %v", err)
	}
	if _, err := r.Body("mos", "notes"); err != nil {
		t.Errorf("Body() error = %v", err)
	}
	if _, err := r.Section("mos", "notes"); err != nil {
		t.Errorf("Section() error = %v", err)
	}

	want := []string{
		"Mos.Components.NotesBody",
		"Mos.Components.NotesHeader",
		"Mos.Sections.Notes",
	}
	if got := r.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestLookupMiss(t *testing.T) {
	r := New()
	r.MustRegister("mos", "notes", Components{Header: stubComponents().Header})

	_, err := r.Body("mos", "notes")
	var target *perrors.ComponentNotFoundError
	if !errors.As(err, &target) {
		t.Fatalf("Body() error = %v, want ComponentNotFoundError", err)
	}
	if target.Identifier != "Mos.Components.NotesBody" || target.Section != "notes" || target.Family != "mos" {
		t.Errorf("ComponentNotFoundError = %+v", target)
	}

	if _, err := r.Header("plain", "notes"); !perrors.Is(err, perrors.ErrCodeComponentNotFound) {
		t.Errorf("Header() in unknown family error = %v", err)
	}
}

func TestRegisterErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *Registry) error
		code  perrors.Code
	}{
		{
			name: "duplicate",
			setup: func(r *Registry) error {
				r.MustRegister("mos", "notes", stubComponents())
				return r.Register("mos", "notes", stubComponents())
			},
			code: perrors.ErrCodeDuplicateComponent,
		},
		{
			name: "section collision",
			setup: func(r *Registry) error {
				r.MustRegister("mos", "to_do", stubComponents())
				return r.Register("mos", "to-do", stubComponents())
			},
			code: perrors.ErrCodeDuplicateComponent,
		},
		{
			name: "family collision",
			setup: func(r *Registry) error {
				r.MustRegister("months_on_sides", "notes", stubComponents())
				return r.Register("MonthsOnSides", "notes", stubComponents())
			},
			code: perrors.ErrCodeDuplicateComponent,
		},
		{
			name: "nil factory",
			setup: func(r *Registry) error {
				return r.RegisterHeader("mos", "notes", nil)
			},
			code: perrors.ErrCodeInvalidInput,
		},
		{
			name: "bad section name",
			setup: func(r *Registry) error {
				return r.Register("mos", "2notes", stubComponents())
			},
			code: perrors.ErrCodeInvalidName,
		},
		{
			name: "bad family name",
			setup: func(r *Registry) error {
				return r.Register("", "notes", stubComponents())
			},
			code: perrors.ErrCodeInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup(New())
			if !perrors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestMustRegisterPanics(t *testing.T) {
	r := New()
	r.MustRegister("mos", "notes", stubComponents())

	defer func() {
		if recover() == nil {
			t.Error("MustRegister() did not panic on duplicate")
		}
	}()
	r.MustRegister("mos", "notes", stubComponents())
}

type testFamily struct {
	name     string
	sections []string
}

func (f testFamily) Name() string { return f.name }

func (f testFamily) Register(r *Registry) error {
	for _, s := range f.sections {
		if err := r.Register(f.name, s, stubComponents()); err != nil {
			return err
		}
	}
	return nil
}

func TestInstall(t *testing.T) {
	r, err := Install(
		testFamily{"mos", []string{"monthly", "notes"}},
		testFamily{"plain", []string{"notes"}},
	)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	if got, want := r.Families(), []string{"mos", "plain"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Families() = %v, want %v", got, want)
	}

	entries := r.Entries()
	var got []string
	for _, e := range entries {
		got = append(got, fmt.Sprintf("%s/%s complete=%v", e.Family, e.Section, e.Complete()))
	}
	want := []string{"mos/monthly complete=true", "mos/notes complete=true", "plain/notes complete=true"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(entries[0].Roles, Roles) {
		t.Errorf("Roles = %v, want %v", entries[0].Roles, Roles)
	}
}

func TestInstallFailure(t *testing.T) {
	_, err := Install(
		testFamily{"mos", []string{"notes"}},
		testFamily{"mos", []string{"notes"}},
	)
	if !perrors.Is(err, perrors.ErrCodeDuplicateComponent) {
		t.Errorf("Install() error = %v, want DUPLICATE_COMPONENT", err)
	}
}

func TestIncompleteEntry(t *testing.T) {
	r := New()
	r.MustRegister("mos", "daily", Components{Header: stubComponents().Header})
	entries := r.Entries()
	if len(entries) != 1 || entries[0].Complete() {
		t.Errorf("Entries() = %+v, want one incomplete entry", entries)
	}
}
