package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-mindmap/pkg/layout"
	"github.com/mattsolo1/grove-mindmap/pkg/service"
	"github.com/mattsolo1/grove-mindmap/pkg/session"
	"github.com/mattsolo1/grove-mindmap/pkg/tree"
)

func NewShowCmd(svc **service.Service) *cobra.Command {
	var (
		expandAll  bool
		expand     []string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the mindmap outline",
		Long: `Print the visible part of the mindmap with layout positions.

Only the root is expanded unless --expand or --expand-all is given.

Examples:
  mm show                     # Root and its children
  mm show --expand-all        # Every node
  mm show --expand node-123   # Also open node-123 and its ancestors
  mm show --json              # Positioned nodes and edges as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := (*svc).Open()
			if expandAll {
				sess.ExpandAll()
			}
			for _, id := range expand {
				if !sess.Reveal(id) {
					return fmt.Errorf("node not found: %s", id)
				}
				sess.Expand(id)
			}

			result := sess.Layout()
			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			printOutline(out, sess, result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&expandAll, "expand-all", false, "Expand every node")
	cmd.Flags().StringSliceVar(&expand, "expand", nil, "Expand these node ids")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the layout as JSON")

	return cmd
}

func printOutline(w io.Writer, sess *session.Session, result layout.Result) {
	for _, n := range result.Nodes {
		marker := " "
		if n.HasChildren {
			marker = "▸"
			if n.Expanded {
				marker = "▾"
			}
		}
		fmt.Fprintf(w, "%s%s %s  [%s] (%g, %g)\n",
			strings.Repeat("  ", n.Level), marker, n.Title, n.ID, n.Position.X, n.Position.Y)
	}
	fmt.Fprintf(w, "\n%d of %d nodes shown\n", len(result.Nodes), tree.Count(sess.Document()))
}
