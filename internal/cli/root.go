// Package cli provides the command-line interface for toilet-monitor.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/toilet-monitor/internal/app"
	"github.com/runoshun/toilet-monitor/internal/usecase"
)

// Command group IDs.
const (
	groupChecklist = "checklist"
	groupReport    = "report"
	groupSetup     = "setup"
)

// errNoContainer is returned by commands that need storage when the
// application could not be initialized.
var errNoContainer = errors.New("application not initialized (check config.toml)")

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for toilet-monitor.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "toilet-monitor",
		Short: "Toilet cleanliness inspection checklist",
		Long: `toilet-monitor keeps the cleanliness and completeness checklist for a
toilet inspection round. Mark each task as done, attach notes, record the
date, location and coordinator, then export a CSV or print the report.

Running without a subcommand opens the interactive checklist.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests or with a broken config)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupChecklist, Title: "Checklist Commands:"},
		&cobra.Group{ID: groupReport, Title: "Report Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Checklist commands
	showCmd := newShowCommand(c)
	showCmd.GroupID = groupChecklist

	setCmd := newSetCommand(c)
	setCmd.GroupID = groupChecklist

	noteCmd := newNoteCommand(c)
	noteCmd.GroupID = groupChecklist

	metaCmd := newMetaCommand(c)
	metaCmd.GroupID = groupChecklist

	resetCmd := newResetCommand(c)
	resetCmd.GroupID = groupChecklist

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupChecklist

	// Report commands
	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupReport

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupReport

	printCmd := newPrintCommand(c)
	printCmd.GroupID = groupReport

	shareCmd := newShareCommand(c)
	shareCmd.GroupID = groupReport

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	logsCmd := newLogsCommand(c)
	logsCmd.GroupID = groupSetup

	root.AddCommand(
		showCmd,
		setCmd,
		noteCmd,
		metaCmd,
		resetCmd,
		tuiCmd,
		exportCmd,
		importCmd,
		printCmd,
		shareCmd,
		configCmd,
		logsCmd,
	)

	return root
}

// startController returns a started controller for a one-shot command.
func startController(cmd *cobra.Command, c *app.Container) (*usecase.Controller, error) {
	if c == nil {
		return nil, errNoContainer
	}
	ctrl := c.Controller()
	out, err := ctrl.Start(cmd.Context())
	if err != nil {
		return nil, err
	}
	if !out.Restored && !out.Saved {
		warnUnsaved(cmd)
	}
	return ctrl, nil
}

// warnUnsaved prints the passive warning for a failed write.
func warnUnsaved(cmd *cobra.Command) {
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Warning: checklist not saved; changes are kept for this run only")
}
