package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-mindmap/pkg/service"
)

// Register adds every mm subcommand to root. svc is filled in by the
// root's pre-run hook before any subcommand runs.
func Register(root *cobra.Command, svc **service.Service) {
	root.AddCommand(NewShowCmd(svc))
	root.AddCommand(NewAddCmd(svc))
	root.AddCommand(NewSiblingCmd(svc))
	root.AddCommand(NewRemoveCmd(svc))
	root.AddCommand(NewMoveCmd(svc))
	root.AddCommand(NewDuplicateCmd(svc))
	root.AddCommand(NewEditCmd(svc))
	root.AddCommand(NewSearchCmd(svc))
	root.AddCommand(NewExportCmd(svc))
	root.AddCommand(NewImportCmd(svc))
	root.AddCommand(NewTuiCmd(svc))
	root.AddCommand(NewVersionCmd())
}
