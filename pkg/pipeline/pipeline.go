// Package pipeline runs a complete planner generation: resolve the enabled
// sections, generate one document per section, and report the outcome.
//
// This package is shared by the CLI and anything else that embeds the
// generator, so defaults and failure handling live in one place.
//
// # Failure Isolation
//
// A section that fails to resolve or generate produces no document and is
// reported in [Result.Failures]; the other sections still run. Only
// configuration-wide problems and cancellation fail the whole run.
//
// # Usage
//
//	reg, _ := all.Registry()
//	runner := pipeline.NewRunner(reg, logger)
//	result, err := runner.Generate(ctx, cfg, pipeline.Options{Parallelism: 4})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, doc := range result.Documents {
//	    // write doc.Name with doc.Content
//	}
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	perrors "github.com/matzehuels/plannergen/pkg/errors"
	"github.com/matzehuels/plannergen/pkg/planner/section"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultParallelism generates one section at a time.
	DefaultParallelism = 1

	// MaxParallelism caps concurrent section generation.
	MaxParallelism = 64
)

// =============================================================================
// Options - Run Configuration
// =============================================================================

// Options controls one generation run.
type Options struct {
	// Sections, when non-empty, replaces the configuration's enabled flags:
	// exactly these sections are generated.
	Sections []string

	// Parallelism is the number of sections generated concurrently.
	Parallelism int

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Parallelism == 0 {
		o.Parallelism = DefaultParallelism
	}
	if o.Parallelism < 0 || o.Parallelism > MaxParallelism {
		return perrors.New(perrors.ErrCodeInvalidInput, "parallelism must be between 1 and %d, got %d", MaxParallelism, o.Parallelism)
	}
	for _, name := range o.Sections {
		if err := perrors.ValidateName("section", name); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// =============================================================================
// Results
// =============================================================================

// Failure is a section that produced no document.
type Failure struct {
	Section string
	Family  string
	Err     error
}

// Error implements the error interface.
func (f Failure) Error() string {
	return fmt.Sprintf("section %s (%s): %v", f.Section, f.Family, f.Err)
}

// Unwrap returns the underlying error.
func (f Failure) Unwrap() error {
	return f.Err
}

// Result is the outcome of a run. Documents and Failures each follow the
// configuration's section order.
type Result struct {
	// RunID identifies the run in logs and hook events.
	RunID string

	Documents []section.Document
	Failures  []Failure

	Stats Stats
}

// Stats contains run statistics.
type Stats struct {
	Sections     int // enabled sections
	Bytes        int // total document size
	ResolveTime  time.Duration
	GenerateTime time.Duration
}

// OK reports whether every enabled section produced a document.
func (r *Result) OK() bool {
	return len(r.Failures) == 0
}

// Err joins all failures, or returns nil.
func (r *Result) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}
