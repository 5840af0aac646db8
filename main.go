package main

import (
	"fmt"
	"os"

	"github.com/mattsolo1/grove-core/cli"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-mindmap/cmd"
	"github.com/mattsolo1/grove-mindmap/cmd/config"
	"github.com/mattsolo1/grove-mindmap/pkg/service"
)

var svc *service.Service

func main() {
	rootCmd := cli.NewStandardCommand(
		"mm",
		"A keyboard-driven mindmap editor",
	)
	config.AddGlobalFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		// This runs once before any subcommand
		if c.Name() == "version" {
			return nil
		}
		var err error
		svc, err = config.InitService(c)
		if err != nil {
			return fmt.Errorf("failed to initialize service: %w", err)
		}
		return nil
	}
	rootCmd.PersistentPostRunE = func(c *cobra.Command, args []string) error {
		if svc != nil {
			return svc.Close()
		}
		return nil
	}

	// Add subcommands
	cmd.Register(rootCmd, &svc)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
