package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/toilet-monitor/internal/app"
	"github.com/runoshun/toilet-monitor/internal/usecase"
)

// newLogsCommand creates the logs command for viewing the application log.
func newLogsCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Lines int
	}

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the application log",
		Long: `Show the application log written under the home directory.
Use -n to show only the last lines.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return errNoContainer
			}
			out, err := c.ShowLogsUseCase().Execute(cmd.Context(), usecase.ShowLogsInput{
				Lines: opts.Lines,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Content)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Lines, "lines", "n", 0, "Number of lines from the end (0 = all)")

	return cmd
}
