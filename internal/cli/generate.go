package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plannergen/pkg/config"
	pkgio "github.com/matzehuels/plannergen/pkg/io"
	"github.com/matzehuels/plannergen/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	config      string   // configuration file; found automatically when empty
	output      string   // output directory
	sections    []string // sections to generate instead of the enabled ones
	parallel    int      // sections generated concurrently
	interactive bool     // pick sections in a terminal UI
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{output: defaultOutputDir, parallel: pipeline.DefaultParallelism}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate planner documents from a configuration",
		Long: `Generate writes one LaTeX document per enabled section into the output
directory, plus a main.tex that includes them in configuration order.

Without --config, planner.toml is read from the working directory or from
the user config directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "configuration file (.toml, .yaml or .yml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output directory")
	cmd.Flags().StringSliceVarP(&opts.sections, "sections", "s", nil, "generate only these sections (comma-separated)")
	cmd.Flags().IntVarP(&opts.parallel, "parallel", "p", opts.parallel, "sections generated concurrently")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "choose sections interactively")
	cmd.MarkFlagsMutuallyExclusive("sections", "interactive")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts generateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := c.Out

	path := opts.config
	if path == "" {
		found, err := findConfig()
		if err != nil {
			return err
		}
		path = found
	}
	logger.Debug("loading configuration", "path", path)

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	sections := opts.sections
	if opts.interactive {
		picked, ok, err := pickSections(cfg)
		if err != nil {
			return err
		}
		if !ok {
			printInfo(out, "Nothing generated")
			return nil
		}
		sections = picked
	}

	runner, err := c.newRunner()
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	result, err := runner.Generate(ctx, cfg, pipeline.Options{
		Sections:    sections,
		Parallelism: opts.parallel,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d of %d sections", len(result.Documents), result.Stats.Sections))

	spin := newSpinner(ctx, cmd.ErrOrStderr(), "Writing documents...")
	spin.Start()
	paths, err := pkgio.Export(ctx, opts.output, result.Documents, cfg.Parameters)
	spin.Stop()
	if err != nil {
		return err
	}

	printSummary(out, result, paths)
	if !result.OK() {
		return fmt.Errorf("%d of %d sections failed", len(result.Failures), result.Stats.Sections)
	}
	if len(result.Documents) > 0 {
		printNextStep(out, "Compile", "latexmk -pdf -cd "+filepath.Join(opts.output, pkgio.MainDocument))
	}
	return nil
}

// printSummary reports written files and failed sections.
func printSummary(w io.Writer, result *pipeline.Result, paths []string) {
	switch {
	case result.Stats.Sections == 0:
		printWarning(w, "No sections enabled")
	case result.OK():
		printSuccess(w, "Planner generated")
	default:
		printWarning(w, "Planner generated with failures")
	}

	for _, p := range paths {
		printFile(w, p)
	}
	for _, f := range result.Failures {
		printError(w, "%s", f.Error())
	}

	printStats(w,
		fmt.Sprintf("%d documents", len(result.Documents)),
		fmt.Sprintf("%d bytes", result.Stats.Bytes),
		result.Stats.GenerateTime.Round(time.Millisecond).String())
}
