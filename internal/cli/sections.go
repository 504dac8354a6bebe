package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plannergen/pkg/planner/registry"
)

// sectionsCommand creates the sections command, which lists every section
// the built-in template families provide.
func (c *CLI) sectionsCommand() *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "sections",
		Short: "List template families and the sections they provide",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner()
			if err != nil {
				return err
			}
			return printSections(c.Out, runner.Registry, family)
		},
	}

	cmd.Flags().StringVarP(&family, "template", "t", "", "only show this template family")

	return cmd
}

// printSections renders the registry's entries as a table. Sections missing
// a component are listed with the roles they do have and flagged below.
func printSections(w io.Writer, reg *registry.Registry, family string) error {
	var entries []registry.Entry
	for _, e := range reg.Entries() {
		if family == "" || e.Family == family {
			entries = append(entries, e)
		}
	}
	if len(entries) == 0 {
		if family != "" {
			return fmt.Errorf("unknown template %q (available: %s)", family, strings.Join(reg.Families(), ", "))
		}
		printWarning(w, "No template families registered")
		return nil
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		roles := make([]string, len(e.Roles))
		for j, r := range e.Roles {
			roles[j] = string(r)
		}
		rows[i] = []string{e.Family, e.Section, strings.Join(roles, ", ")}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Template", "Section", "Components").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row >= 0 && row < len(entries) && !entries[row].Complete() {
				return lipgloss.NewStyle().Foreground(colorYellow)
			}
			return lipgloss.NewStyle()
		})

	fmt.Fprintln(w, t.Render())

	for _, e := range entries {
		if !e.Complete() {
			printDetail(w, "%s.%s is incomplete and cannot be generated", e.Family, e.Section)
		}
	}
	return nil
}
