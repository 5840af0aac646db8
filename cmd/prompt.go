package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var errAborted = errors.New("cancelled")

// confirm asks a yes/no question on the command's streams.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", prompt)
	var response string
	_, _ = fmt.Fscanln(cmd.InOrStdin(), &response)
	return strings.ToLower(strings.TrimSpace(response)) == "y"
}
