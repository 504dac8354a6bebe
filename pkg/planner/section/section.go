// Package section composes a section's header and body over its pages.
//
// Every section type supplies three things: a [Header], a [Body] and a
// [PageSource]. The composer asks the page source for the ordered pages and,
// for each page, renders the header immediately followed by the body. Pages
// are joined with [tex.PageGlue]; downstream tooling splits on it.
//
//	s, err := section.New("notes", opts, header, body, section.PageSourceFunc(pages))
//	doc, err := s.Generate()
//	// doc.Name == "notes.tex"
package section

import (
	"fmt"
	"strings"

	"github.com/matzehuels/plannergen/pkg/config"
	"github.com/matzehuels/plannergen/pkg/errors"
	"github.com/matzehuels/plannergen/pkg/tex"
)

// DefaultExtension is the file extension of generated documents.
const DefaultExtension = "tex"

// Page is one page handed to a header and a body. Its concrete type belongs
// to the section type that produced it (a calendar.Month, a note index, ...).
type Page = any

// Header renders the top of a page.
type Header interface {
	Generate(page Page) (string, error)
}

// Body renders the rest of a page.
type Body interface {
	Generate(page Page) (string, error)
}

// PageSource produces a section's pages in order.
type PageSource interface {
	Pages() ([]Page, error)
}

// PageSourceFunc adapts a function to PageSource.
type PageSourceFunc func() ([]Page, error)

// Pages calls f.
func (f PageSourceFunc) Pages() ([]Page, error) {
	return f()
}

// HeaderFunc adapts a function to Header.
type HeaderFunc func(page Page) (string, error)

// Generate calls f.
func (f HeaderFunc) Generate(page Page) (string, error) {
	return f(page)
}

// BodyFunc adapts a function to Body.
type BodyFunc func(page Page) (string, error)

// Generate calls f.
func (f BodyFunc) Generate(page Page) (string, error) {
	return f(page)
}

// Document is one generated output file.
type Document struct {
	Name    string
	Content string
}

// Generator is what the rest of the system sees of a section.
type Generator interface {
	Name() string
	Enabled() bool
	Generate() (Document, error)
}

// Option customizes a Section.
type Option func(*Section)

// WithExtension sets the document extension (without the dot).
func WithExtension(ext string) Option {
	return func(s *Section) { s.ext = strings.TrimPrefix(ext, ".") }
}

// Section is the shared composition logic of all section types.
// A Section holds no mutable state, so Generate can be called repeatedly
// and from several goroutines.
type Section struct {
	name    string
	options config.SectionConfig
	header  Header
	body    Body
	pages   PageSource
	ext     string
}

// New creates a section. A nil page source is an
// *errors.UnimplementedPageSequenceError.
func New(name string, options config.SectionConfig, header Header, body Body, pages PageSource, opts ...Option) (*Section, error) {
	if pages == nil {
		return nil, &errors.UnimplementedPageSequenceError{Section: name}
	}
	if header == nil || body == nil {
		return nil, errors.New(errors.ErrCodeInternal, "section %q: header and body are required", name)
	}

	s := &Section{
		name:    name,
		options: options,
		header:  header,
		body:    body,
		pages:   pages,
		ext:     DefaultExtension,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Name returns the section name.
func (s *Section) Name() string {
	return s.name
}

// Options returns the section's configuration.
func (s *Section) Options() config.SectionConfig {
	return s.options
}

// Enabled reports the section's own enabled flag; absent means false.
func (s *Section) Enabled() bool {
	return s.options.Enabled()
}

// DocumentName returns "<name>.<ext>".
func (s *Section) DocumentName() string {
	return s.name + "." + s.ext
}

// Generate renders every page and joins them with tex.PageGlue.
// Any header, body or page source error aborts the whole document.
func (s *Section) Generate() (Document, error) {
	if s.pages == nil {
		return Document{}, &errors.UnimplementedPageSequenceError{Section: s.name}
	}

	pages, err := s.pages.Pages()
	if err != nil {
		return Document{}, fmt.Errorf("section %s: pages: %w", s.name, err)
	}

	rendered := make([]string, len(pages))
	for i, page := range pages {
		head, err := s.header.Generate(page)
		if err != nil {
			return Document{}, fmt.Errorf("section %s: page %d header: %w", s.name, i+1, err)
		}
		body, err := s.body.Generate(page)
		if err != nil {
			return Document{}, fmt.Errorf("section %s: page %d body: %w", s.name, i+1, err)
		}
		rendered[i] = head + body
	}

	return Document{
		Name:    s.DocumentName(),
		Content: strings.Join(rendered, tex.PageGlue),
	}, nil
}
