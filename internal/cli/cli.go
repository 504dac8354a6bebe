package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plannergen/pkg/buildinfo"
	"github.com/matzehuels/plannergen/pkg/pipeline"
	"github.com/matzehuels/plannergen/pkg/templates/all"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "plannergen"

	// defaultConfigName is looked up in the working directory, then in the
	// user config directory, when --config is not given.
	defaultConfigName = "planner.toml"

	// defaultOutputDir is where documents are written unless --output is set.
	defaultOutputDir = "out"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output; defaults to os.Stdout.
	Out io.Writer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Plannergen builds printable LaTeX planners",
		Long:         `Plannergen turns a planner configuration into LaTeX documents, one per enabled section, plus a main.tex that ties them together.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.sectionsCommand())
	root.AddCommand(c.initCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner with every built-in template family.
func (c *CLI) newRunner() (*pipeline.Runner, error) {
	reg, err := all.Registry()
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(reg, c.Logger), nil
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/plannergen/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// findConfig returns the configuration to load when --config is empty:
// planner.toml in the working directory if present, else the one in the
// user config directory.
func findConfig() (string, error) {
	if _, err := os.Stat(defaultConfigName); err == nil {
		return defaultConfigName, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, defaultConfigName), nil
}
