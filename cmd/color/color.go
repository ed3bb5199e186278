package color

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/feederwatch/dashboard/internal/conf"
	"github.com/feederwatch/dashboard/internal/labelcolor"
)

// Command creates a new cobra.Command that prints the colour assigned to labels.
func Command(_ *conf.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color [label]...",
		Short: "Print the overlay colour and readable text colour for labels",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, label := range args {
				bg := labelcolor.LabelToUniqueHexColor(label)
				fg := labelcolor.GetContrastTextColor(bg)
				sample := lipgloss.NewStyle().
					Background(lipgloss.Color(bg)).
					Foreground(lipgloss.Color(fg)).
					Padding(0, 1).
					Render(label)
				if _, err := fmt.Fprintf(out, "%s  %s  %s\n", bg, fg, sample); err != nil {
					return err
				}
			}
			return nil
		},
	}

	return cmd
}
