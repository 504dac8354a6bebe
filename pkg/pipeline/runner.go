package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/plannergen/pkg/config"
	"github.com/matzehuels/plannergen/pkg/observability"
	"github.com/matzehuels/plannergen/pkg/planner/registry"
	"github.com/matzehuels/plannergen/pkg/planner/resolver"
	"github.com/matzehuels/plannergen/pkg/planner/section"
)

// Runner executes generation runs against a component registry.
//
// The Runner stores no run state; multiple goroutines can use the same
// Runner with different configurations.
type Runner struct {
	Registry *registry.Registry
	Logger   *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(reg *registry.Registry, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Registry: reg, Logger: logger}
}

// outcome is the per-section slot filled by a worker.
type outcome struct {
	doc section.Document
	err error
}

// Generate resolves and generates every enabled section of cfg.
//
// Per-section failures are collected in the result; the returned error is
// non-nil only for invalid options, configuration-wide resolution problems,
// or cancellation of ctx.
func (r *Runner) Generate(ctx context.Context, cfg *config.Config, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	if len(opts.Sections) > 0 {
		selected, err := cfg.SetEnabled(opts.Sections)
		if err != nil {
			return nil, err
		}
		cfg = selected
	}

	result := &Result{RunID: uuid.NewString()}
	logger := opts.Logger.With("run", result.RunID[:8])
	hooks := observability.Generation()

	for _, w := range cfg.Warnings {
		logger.Warn(w)
	}

	// Stage 1: Resolve
	resolveStart := time.Now()
	result.Stats.Sections = len(cfg.EnabledSections())
	hooks.OnResolveStart(ctx, result.RunID, result.Stats.Sections)

	resolved, err := resolver.New(r.Registry, logger).ResolveEach(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}

	failed := 0
	for _, res := range resolved {
		if res.Err != nil {
			failed++
		}
	}
	result.Stats.ResolveTime = time.Since(resolveStart)
	hooks.OnResolveComplete(ctx, result.RunID, len(resolved)-failed, failed, result.Stats.ResolveTime)
	logger.Debug("resolved sections",
		"sections", len(resolved),
		"failed", failed,
		"duration", result.Stats.ResolveTime)

	// Stage 2: Generate
	generateStart := time.Now()
	outcomes := make([]outcome, len(resolved))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)
	for i, res := range resolved {
		if res.Err != nil {
			outcomes[i].err = res.Err
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.generate(gctx, result.RunID, res.Descriptor)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result.Stats.GenerateTime = time.Since(generateStart)

	// Stage 3: Collect in configuration order
	for i, res := range resolved {
		o := outcomes[i]
		if o.err != nil {
			logger.Error("section failed", "section", res.Name, "family", res.Family, "err", o.err)
			result.Failures = append(result.Failures, Failure{Section: res.Name, Family: res.Family, Err: o.err})
			continue
		}
		logger.Info("generated section",
			"section", res.Name,
			"family", res.Family,
			"document", o.doc.Name,
			"bytes", len(o.doc.Content))
		result.Documents = append(result.Documents, o.doc)
		result.Stats.Bytes += len(o.doc.Content)
	}

	return result, nil
}

func (r *Runner) generate(ctx context.Context, runID string, d *resolver.Descriptor) outcome {
	hooks := observability.Generation()
	hooks.OnSectionStart(ctx, runID, d.Name)

	start := time.Now()
	doc, err := d.Section.Generate()
	hooks.OnSectionComplete(ctx, runID, d.Name, len(doc.Content), time.Since(start), err)

	return outcome{doc: doc, err: err}
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
