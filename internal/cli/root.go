// Package cli implements the plannergen command-line interface.
//
// This package provides commands for generating planner documents from a
// configuration file, listing the template families compiled into the
// binary, and writing a starter configuration. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Write one LaTeX document per enabled section plus main.tex
//   - sections: List registered template families and their sections
//   - init: Write a starter planner.toml
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/plannergen/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli
