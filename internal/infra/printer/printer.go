// Package printer implements domain.PrintInvoker for terminals and print spoolers.
package printer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/toilet-monitor/internal/domain"
	"github.com/runoshun/toilet-monitor/internal/infra/executor"
)

// StyleAuto picks a dark or light style from the terminal background.
const StyleAuto = "auto"

// Runner runs an external command.
type Runner interface {
	Run(ctx context.Context, cmd *executor.Command) error
}

// Printer sends reports to a configured command or renders them to a writer.
// Fields are ordered to minimize memory padding.
type Printer struct {
	out     io.Writer
	errOut  io.Writer
	runner  Runner
	command string
	style   string
	width   int
}

// New creates a Printer from the [print] config section.
// With a command set, the plain-text report is piped to it; otherwise the
// Markdown report is rendered through glamour and written to out.
func New(cfg domain.PrintConfig, runner Runner, out, errOut io.Writer) *Printer {
	width := cfg.Width
	if width <= 0 {
		width = domain.DefaultPrintWidth
	}
	style := cfg.Style
	if style == "" {
		style = StyleAuto
	}
	return &Printer{
		out:     out,
		errOut:  errOut,
		runner:  runner,
		command: strings.TrimSpace(cfg.Command),
		style:   style,
		width:   width,
	}
}

// Print hands the job to the spooler command or renders it.
func (p *Printer) Print(ctx context.Context, job domain.PrintJob) error {
	if p.command != "" {
		cmd := executor.NewShellCommand(p.command)
		cmd.Stdin = strings.NewReader(job.Text)
		cmd.Stdout = p.out
		cmd.Stderr = p.errOut
		if err := p.runner.Run(ctx, cmd); err != nil {
			return fmt.Errorf("run %q: %w", p.command, err)
		}
		return nil
	}

	rendered, err := p.Render(job.Markdown)
	if err != nil {
		return err
	}
	_, err = io.WriteString(p.out, rendered)
	return err
}

// Render renders Markdown for the terminal.
func (p *Printer) Render(markdown string) (string, error) {
	styleOpt := glamour.WithStandardStyle(p.style)
	if p.style == StyleAuto {
		styleOpt = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(p.width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}

	rendered, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return rendered, nil
}

// ResolveStyle replaces the auto style with dark or light by querying the
// terminal once. Call it before another program takes over the terminal.
func ResolveStyle(style string) string {
	if style != "" && style != StyleAuto {
		return style
	}
	if lipgloss.HasDarkBackground() {
		return styles.DarkStyle
	}
	return styles.LightStyle
}

var _ domain.PrintInvoker = (*Printer)(nil)
