package cli

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/toilet-monitor/internal/app"
	"github.com/runoshun/toilet-monitor/internal/infra/printer"
	"github.com/runoshun/toilet-monitor/internal/tui"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// This is the same as running toilet-monitor without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive checklist",
		Long:  `Launch the interactive terminal checklist.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
	return cmd
}

// launchTUI runs the interactive checklist until the user quits.
func launchTUI(c *app.Container) error {
	if c == nil {
		return errNoContainer
	}

	// The preview renderer must not query the terminal once the TUI owns it.
	previewCfg := c.AppConfig.Print
	previewCfg.Style = printer.ResolveStyle(previewCfg.Style)
	opts := tui.Options{
		Renderer:     printer.New(previewCfg, nil, io.Discard, io.Discard),
		StatusLabels: c.AppConfig.Export.StatusLabels,
	}

	model := tui.New(c.Controller(), opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
