package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/plannergen/pkg/config"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// SectionPickerModel - Interactive section selection
// =============================================================================

// pickItem is one configured section in the picker.
type pickItem struct {
	Name     string
	Family   string
	Selected bool
}

// SectionPickerModel is the bubbletea model for choosing which sections to
// generate. Sections start selected when they are enabled in the
// configuration.
type SectionPickerModel struct {
	Items     []pickItem
	Cursor    int
	Confirmed bool
}

// NewSectionPickerModel creates a picker over the sections of cfg.
func NewSectionPickerModel(cfg *config.Config) SectionPickerModel {
	items := make([]pickItem, len(cfg.Sections))
	for i, s := range cfg.Sections {
		items[i] = pickItem{Name: s.Name, Family: cfg.TemplateFor(s), Selected: s.Enabled()}
	}
	return SectionPickerModel{Items: items}
}

// Selection returns the selected section names in configuration order.
func (m SectionPickerModel) Selection() []string {
	var out []string
	for _, it := range m.Items {
		if it.Selected {
			out = append(out, it.Name)
		}
	}
	return out
}

func (m SectionPickerModel) Init() tea.Cmd {
	return nil
}

func (m SectionPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Items)-1 {
			m.Cursor++
		}
	case " ", "space", "x":
		if len(m.Items) > 0 {
			m.Items = toggled(m.Items, m.Cursor)
		}
	case "a":
		m.Items = allSelected(m.Items, len(m.Selection()) < len(m.Items))
	case "enter":
		if len(m.Selection()) == 0 {
			return m, nil
		}
		m.Confirmed = true
		return m, tea.Quit
	}
	return m, nil
}

// toggled returns a copy of items with item i flipped, so earlier models
// handed out by Update keep their own state.
func toggled(items []pickItem, i int) []pickItem {
	out := append([]pickItem(nil), items...)
	out[i].Selected = !out[i].Selected
	return out
}

func allSelected(items []pickItem, selected bool) []pickItem {
	out := append([]pickItem(nil), items...)
	for i := range out {
		out[i].Selected = selected
	}
	return out
}

func (m SectionPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Sections"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ generate  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.Items))
	for i, it := range m.Items {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		mark := "[ ]"
		if it.Selected {
			mark = "[x]"
		}
		rows[i] = []string{cursor, mark, it.Name, it.Family}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "Section", "Template").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row < 0 || row >= len(m.Items) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if m.Items[row].Selected {
				base = base.Foreground(colorGreen)
			} else {
				base = base.Foreground(colorDim)
			}
			if row == m.Cursor {
				base = base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d of %d selected", len(m.Selection()), len(m.Items))))

	return b.String()
}

// pickSections runs the picker. ok is false when the user quit without
// confirming.
func pickSections(cfg *config.Config) (names []string, ok bool, err error) {
	if len(cfg.Sections) == 0 {
		return nil, false, nil
	}

	final, err := tea.NewProgram(NewSectionPickerModel(cfg)).Run()
	if err != nil {
		return nil, false, fmt.Errorf("section picker: %w", err)
	}
	m := final.(SectionPickerModel)
	if !m.Confirmed {
		return nil, false, nil
	}
	return m.Selection(), true, nil
}
