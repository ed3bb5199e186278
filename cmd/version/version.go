package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feederwatch/dashboard/internal/buildinfo"
)

// Command creates a new cobra.Command to print version information.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the feederwatch version",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), buildinfo.Current())
			return err
		},
	}

	return cmd
}
