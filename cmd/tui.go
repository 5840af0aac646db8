package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-mindmap/internal/tui/mindmap"
	"github.com/mattsolo1/grove-mindmap/pkg/service"
)

// NewTuiCmd creates the `mm tui` command.
func NewTuiCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Edit the mindmap interactively",
		Long: `Launch an interactive terminal editor for the mindmap.

Arrow keys move between nodes, enter expands or collapses, n adds a child,
s a sibling, e edits the title, d deletes, D duplicates. u or ctrl+z
undoes, ctrl+y redoes. Changes are saved a moment after the last edit,
on ctrl+s and on quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Check for TTY
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("TUI mode requires an interactive terminal")
			}

			s := *svc
			model := mindmap.New(s.Open(), s)
			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}
	return cmd
}
