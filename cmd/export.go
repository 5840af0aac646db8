package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-mindmap/pkg/codec"
	"github.com/mattsolo1/grove-mindmap/pkg/service"
	"github.com/mattsolo1/grove-mindmap/pkg/tree"
)

func NewExportCmd(svc **service.Service) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the mindmap",
		Long: `Write the whole mindmap as JSON or YAML. The export holds every field
and can be read back with 'mm import'. Markdown writes a readable outline
that cannot be imported.

Examples:
  mm export > map.json
  mm export --format yaml -o map.yaml
  mm export -o map.md         # Format from the extension`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := codec.FormatJSON
			switch {
			case cmd.Flags().Changed("format"):
				parsed, err := codec.ParseFormat(format)
				if err != nil {
					return err
				}
				f = parsed
			case output != "":
				f = codec.FormatFromPath(output)
			}

			data, err := (*svc).Export((*svc).Open(), f)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format: json, yaml or markdown")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func NewImportCmd(svc **service.Service) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the mindmap with an exported file",
		Long: `Read a JSON or YAML export (by file extension) and make it the
current mindmap. The current mindmap is replaced.

Examples:
  mm import map.json
  mm import map.yaml --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirm(cmd, "Replace the current mindmap?") {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
			sess, err := (*svc).ImportFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d nodes\n", tree.Count(sess.Document()))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace without confirmation")
	return cmd
}
