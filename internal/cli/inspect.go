package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/viewlayout/pkg/constraint"
	"github.com/matzehuels/viewlayout/pkg/scene"
)

// inspectCommand creates the inspect command for browsing constraints.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [scene.toml]",
		Short: "Browse a scene's constraints interactively",
		Long: `Browse a scene's constraints interactively.

Move with the arrow keys (or j/k) and press space to activate or deactivate
the selected constraint. The engine is updated immediately, so the active
count reflects every toggle. Without a scene file the embedded demo is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			return c.runInspect(path)
		},
	}
}

func (c *CLI) runInspect(path string) error {
	r, err := c.buildScene(path)
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	defer r.Close()

	final, err := tea.NewProgram(NewConstraintListModel(r)).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(ConstraintListModel); ok && m.Toggled > 0 {
		printInfo(c.out, "%d toggles, %d of %d constraints active", m.Toggled, r.Engine.Len(), len(m.Constraints))
	}
	return nil
}

// =============================================================================
// ConstraintListModel - Interactive constraint browser
// =============================================================================

// ConstraintListModel is the bubbletea model for browsing a built scene.
type ConstraintListModel struct {
	Result      *scene.Result
	Constraints []*constraint.Mutable
	Cursor      int
	Height      int
	Offset      int
	Toggled     int
}

// NewConstraintListModel creates a browser over every constraint of r.
func NewConstraintListModel(r *scene.Result) ConstraintListModel {
	return ConstraintListModel{
		Result:      r,
		Constraints: r.Constraints(),
		Height:      15,
	}
}

func (m ConstraintListModel) Init() tea.Cmd {
	return nil
}

func (m ConstraintListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Constraints)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "enter":
			if len(m.Constraints) > 0 {
				c := m.Constraints[m.Cursor]
				c.SetActive(!c.IsActive())
				m.Toggled++
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m ConstraintListModel) View() string {
	var b strings.Builder

	title := "Constraints"
	if m.Result != nil && m.Result.Name != "" {
		title += " · " + m.Result.Name
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  space toggle  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Constraints))
	visible := m.Constraints[m.Offset:end]
	b.WriteString(constraintTable(visible, m.Cursor-m.Offset, func(i int) string {
		if m.Offset+i == m.Cursor {
			return "▸ "
		}
		return "  "
	}))
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d] %d active",
		m.Cursor+1, len(m.Constraints), activeCount(m.Constraints))))

	return b.String()
}
