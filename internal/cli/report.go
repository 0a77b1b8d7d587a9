package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/runoshun/toilet-monitor/internal/app"
	"github.com/runoshun/toilet-monitor/internal/infra/download"
	"github.com/runoshun/toilet-monitor/internal/usecase"
)

// newExportCommand creates the export command for writing the CSV report.
func newExportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Dir    string
		Stdout bool
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the checklist as CSV",
		Long: `Export the checklist as monitoring-toilet-<date>.csv.

The file is written to [export] dir (default: current directory) unless
--dir is given. With --stdout the CSV is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return errNoContainer
			}
			if opts.Stdout {
				c.Downloader = download.NewWriterDownloader(cmd.OutOrStdout())
			} else if opts.Dir != "" {
				c.Downloader = download.NewDirDownloader(opts.Dir)
			}

			ctrl, err := startController(cmd, c)
			if err != nil {
				return err
			}
			out, err := ctrl.ExportCSV(cmd.Context())
			if err != nil {
				return err
			}

			if !opts.Stdout {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", out.Location)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Dir, "dir", "", "Output directory (overrides [export] dir)")
	cmd.Flags().BoolVar(&opts.Stdout, "stdout", false, "Print the CSV instead of writing a file")

	return cmd
}

// newImportCommand creates the import command for loading a CSV export.
func newImportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		WithMetadata bool
	}

	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Apply statuses and notes from a CSV export",
		Long: `Apply the status and note of each row of a CSV export to the item
with the same number. Item labels are never changed and unknown numbers
are skipped. Use - to read from stdin.

With --with-metadata the date, location and coordinator of the first
row are applied as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			ctrl, err := startController(cmd, c)
			if err != nil {
				return err
			}
			out, err := ctrl.ImportCSV(cmd.Context(), usecase.ImportCSVInput{
				Content:      content,
				WithMetadata: opts.WithMetadata,
			})
			if err != nil {
				return err
			}
			if out.Applied > 0 && !out.Saved {
				warnUnsaved(cmd)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d rows (%d skipped)\n", out.Applied, out.Skipped)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.WithMetadata, "with-metadata", false, "Also apply date, location and coordinator")

	return cmd
}

// readInput reads a whole file, or stdin when path is "-".
func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// newPrintCommand creates the print command.
func newPrintCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the inspection report",
		Long: `Print the inspection report with the signature block.

With [print] command set (e.g. "lp") the plain-text report is piped to it.
Otherwise the report is rendered to the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := startController(cmd, c)
			if err != nil {
				return err
			}
			_, err = ctrl.Print(cmd.Context())
			return err
		},
	}

	return cmd
}

// newShareCommand creates the share command.
func newShareCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Copy a report summary to the clipboard",
		Long: `Copy the report title and a one-line-per-item summary to the system
clipboard. When no clipboard is available the summary is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := startController(cmd, c)
			if err != nil {
				return err
			}
			out, err := ctrl.Share(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !out.Shared {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Notice: %s\n", out.Notice)
				_, _ = fmt.Fprintf(w, "%s\n\n%s\n", out.Request.Title, out.Request.Text)
				return nil
			}
			_, _ = fmt.Fprintln(w, "Summary copied to clipboard")
			return nil
		},
	}

	return cmd
}
