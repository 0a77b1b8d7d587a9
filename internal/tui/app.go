package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/toilet-monitor/internal/domain"
	"github.com/runoshun/toilet-monitor/internal/usecase"
)

// Renderer turns the Markdown report into terminal output for the preview.
type Renderer interface {
	Render(markdown string) (string, error)
}

// Options configures the TUI.
type Options struct {
	Renderer     Renderer          // Preview renderer (nil = plain text)
	StatusLabels domain.LabelStyle // Status badge labels
}

// Model is the main bubbletea model for the TUI.
// The controller is only touched from Update, so it is never used concurrently.
type Model struct {
	// Dependencies
	ctrl     *usecase.Controller
	renderer Renderer
	err      error

	// State
	checklist domain.Checklist
	meta      domain.SessionMetadata
	notice    string
	labels    domain.LabelStyle

	// Components
	keys       KeyMap
	styles     Styles
	help       help.Model
	preview    viewport.Model
	statusLine *StatusLine

	// Inputs
	noteInput  textinput.Model
	metaInputs [metaFieldCount]textinput.Model

	// Numeric state
	mode          Mode
	confirmAction ConfirmAction
	metaFocus     metaField
	cursor        int
	width         int
	height        int
	started       bool
	unsaved       bool
}

// New creates a new TUI Model driving the given controller.
func New(ctrl *usecase.Controller, opts Options) *Model {
	ni := textinput.New()
	ni.Placeholder = "Catatan"
	ni.CharLimit = 500

	var metaInputs [metaFieldCount]textinput.Model
	placeholders := [metaFieldCount]string{
		metaDate:        "Hari & Tanggal",
		metaLocation:    "Lokasi",
		metaCoordinator: "Koordinator",
	}
	for i := range metaInputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 200
		metaInputs[i] = ti
	}

	labels := opts.StatusLabels
	if !labels.IsValid() {
		labels = domain.LabelStyleLocalized
	}

	styles := DefaultStyles()
	return &Model{
		ctrl:       ctrl,
		renderer:   opts.Renderer,
		labels:     labels,
		keys:       DefaultKeyMap(),
		styles:     styles,
		help:       help.New(),
		statusLine: NewStatusLine(0, &styles),
		noteInput:  ni,
		metaInputs: metaInputs,
		mode:       ModeNormal,
	}
}

// Init starts the controller session.
func (m *Model) Init() tea.Cmd {
	return m.start()
}

// start returns a command that loads or seeds the checklist.
func (m *Model) start() tea.Cmd {
	return func() tea.Msg {
		out, err := m.ctrl.Start(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStarted{Out: out}
	}
}

// SelectedItem returns the item under the cursor.
func (m *Model) SelectedItem() (domain.Item, bool) {
	items := m.checklist.Items()
	if m.cursor < 0 || m.cursor >= len(items) {
		return domain.Item{}, false
	}
	return items[m.cursor], true
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Checklist returns the checklist as last reported by the controller.
func (m *Model) Checklist() domain.Checklist {
	return m.checklist
}

// printExecCmd runs the configured printer while the TUI has released the
// terminal, then waits for Enter so the output stays visible.
type printExecCmd struct {
	ctrl   *usecase.Controller
	stdin  io.Reader
	stdout io.Writer
}

func (c *printExecCmd) Run() error {
	if _, err := c.ctrl.Print(context.Background()); err != nil {
		return err
	}
	if c.stdin == nil || c.stdout == nil {
		return nil
	}
	_, _ = fmt.Fprint(c.stdout, "\nTekan Enter untuk kembali...")
	_, err := bufio.NewReader(c.stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *printExecCmd) SetStdin(r io.Reader)  { c.stdin = r }
func (c *printExecCmd) SetStdout(w io.Writer) { c.stdout = w }
func (c *printExecCmd) SetStderr(io.Writer)   {}
