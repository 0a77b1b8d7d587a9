package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/toilet-monitor/internal/domain"
	"github.com/runoshun/toilet-monitor/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgStarted:
		m.started = true
		m.checklist = msg.Out.Checklist
		m.meta = msg.Out.Metadata
		m.unsaved = !msg.Out.Restored && !msg.Out.Saved
		return m, nil

	case MsgPrinted:
		m.mode = ModeNormal
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.notice = "Laporan dikirim ke printer"
		return m, nil

	case MsgError:
		m.err = msg.Err
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, nil
	}

	if m.mode == ModePreview {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	return m, nil
}

// updateLayoutSizes resizes the components that depend on the window.
func (m *Model) updateLayoutSizes() {
	contentWidth := m.contentWidth()
	m.statusLine.SetWidth(contentWidth)
	m.noteInput.Width = contentWidth - 4
	for i := range m.metaInputs {
		m.metaInputs[i].Width = contentWidth - 20
	}
	m.preview.Width = contentWidth
	m.preview.Height = m.previewHeight()
}

func (m *Model) contentWidth() int {
	width := m.width - 4 // App padding
	if width < 20 {
		width = 20
	}
	return width
}

func (m *Model) previewHeight() int {
	height := m.height - 6
	if height < 5 {
		height = 5
	}
	return height
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Feedback lasts until the next key press
	m.err = nil
	m.notice = ""

	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeEditNote:
		return m.handleEditNoteMode(msg)
	case ModeEditMeta:
		return m.handleEditMetaMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModePreview:
		return m.handlePreviewMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in checklist navigation mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if !m.started {
		return m, nil
	}

	last := m.checklist.Len() - 1
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < last {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(last, 0)

	case key.Matches(msg, m.keys.Toggle):
		if item, ok := m.SelectedItem(); ok {
			m.setStatus(item.ID, item.Status.Toggle())
		}
	case key.Matches(msg, m.keys.Done):
		if item, ok := m.SelectedItem(); ok {
			m.setStatus(item.ID, domain.StatusDone)
		}
	case key.Matches(msg, m.keys.Pending):
		if item, ok := m.SelectedItem(); ok {
			m.setStatus(item.ID, domain.StatusPending)
		}

	case key.Matches(msg, m.keys.Note):
		item, ok := m.SelectedItem()
		if !ok {
			return m, nil
		}
		m.mode = ModeEditNote
		m.noteInput.SetValue(item.Note)
		m.noteInput.CursorEnd()
		return m, m.noteInput.Focus()

	case key.Matches(msg, m.keys.Meta):
		m.mode = ModeEditMeta
		m.metaInputs[metaDate].SetValue(m.meta.DateLabel)
		m.metaInputs[metaLocation].SetValue(m.meta.Location)
		m.metaInputs[metaCoordinator].SetValue(m.meta.Coordinator)
		m.metaFocus = metaDate
		return m, m.focusMetaField()

	case key.Matches(msg, m.keys.Export):
		m.exportCSV()
	case key.Matches(msg, m.keys.Print):
		m.openPreview()
	case key.Matches(msg, m.keys.Share):
		m.share()

	case key.Matches(msg, m.keys.Reset):
		m.mode = ModeConfirm
		m.confirmAction = ConfirmReset

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
	}

	return m, nil
}

// handleEditNoteMode handles keys while editing a note.
func (m *Model) handleEditNoteMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeNoteInput()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if item, ok := m.SelectedItem(); ok {
			m.setNote(item.ID, m.noteInput.Value())
		}
		m.closeNoteInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.noteInput, cmd = m.noteInput.Update(msg)
	return m, cmd
}

func (m *Model) closeNoteInput() {
	m.mode = ModeNormal
	m.noteInput.Blur()
	m.noteInput.Reset()
}

// handleEditMetaMode handles keys while editing the session metadata.
func (m *Model) handleEditMetaMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeMetaInputs()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.saveMetadata()
		m.closeMetaInputs()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.metaFocus = (m.metaFocus + 1) % metaFieldCount
		return m, m.focusMetaField()

	case key.Matches(msg, m.keys.PrevField):
		m.metaFocus = (m.metaFocus + metaFieldCount - 1) % metaFieldCount
		return m, m.focusMetaField()
	}

	var cmd tea.Cmd
	m.metaInputs[m.metaFocus], cmd = m.metaInputs[m.metaFocus].Update(msg)
	return m, cmd
}

// focusMetaField focuses the active metadata input and blurs the others.
func (m *Model) focusMetaField() tea.Cmd {
	for i := range m.metaInputs {
		m.metaInputs[i].Blur()
	}
	m.metaInputs[m.metaFocus].CursorEnd()
	cmd := m.metaInputs[m.metaFocus].Focus()
	return tea.Batch(cmd, textinput.Blink)
}

func (m *Model) closeMetaInputs() {
	m.mode = ModeNormal
	for i := range m.metaInputs {
		m.metaInputs[i].Blur()
	}
}

// handleConfirmMode handles keys in the confirmation dialog.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "n", msg.String() == "N":
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		switch m.confirmAction {
		case ConfirmNone:
			// Nothing to confirm
		case ConfirmReset:
			m.resetAll()
		}
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
	}

	return m, nil
}

// handlePreviewMode handles keys in the print preview.
func (m *Model) handlePreviewMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.Print):
		return m, tea.Exec(&printExecCmd{ctrl: m.ctrl}, func(err error) tea.Msg {
			return MsgPrinted{Err: err}
		})
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

// handleHelpMode closes the help overlay on any key.
func (m *Model) handleHelpMode(_ tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	return m, nil
}

// Controller operations

func (m *Model) setStatus(id int, status domain.Status) {
	out, err := m.ctrl.SetStatus(context.Background(), usecase.SetStatusInput{ID: id, Status: status})
	if err != nil {
		m.err = err
		return
	}
	m.checklist = out.Checklist
	m.afterSave(out.Saved)
}

func (m *Model) setNote(id int, note string) {
	out, err := m.ctrl.SetNote(context.Background(), usecase.SetNoteInput{ID: id, Note: note})
	if err != nil {
		m.err = err
		return
	}
	m.checklist = out.Checklist
	m.afterSave(out.Saved)
}

// afterSave records the save outcome of a checklist mutation.
func (m *Model) afterSave(saved bool) {
	m.meta = m.ctrl.Metadata()
	m.unsaved = !saved
}

func (m *Model) saveMetadata() {
	date := m.metaInputs[metaDate].Value()
	location := m.metaInputs[metaLocation].Value()
	coordinator := m.metaInputs[metaCoordinator].Value()
	out, err := m.ctrl.SetMetadata(context.Background(), usecase.SetMetadataInput{
		DateLabel:   &date,
		Location:    &location,
		Coordinator: &coordinator,
	})
	if err != nil {
		m.err = err
		return
	}
	m.meta = out.Metadata
	if m.ctrl.PersistsMetadata() {
		m.unsaved = !out.Saved
	}
}

func (m *Model) resetAll() {
	// The dialog already asked, so no Confirmer is passed.
	out, err := m.ctrl.ResetAll(context.Background(), usecase.ResetAllInput{})
	if err != nil {
		m.err = err
		return
	}
	m.checklist = out.Checklist
	m.meta = out.Metadata
	m.unsaved = !out.Saved
	m.cursor = 0
	m.notice = "Checklist direset"
}

func (m *Model) exportCSV() {
	out, err := m.ctrl.ExportCSV(context.Background())
	if err != nil {
		m.err = err
		return
	}
	m.notice = fmt.Sprintf("CSV disimpan: %s", out.Location)
}

func (m *Model) share() {
	out, err := m.ctrl.Share(context.Background())
	if err != nil {
		m.err = err
		return
	}
	if out.Notice != "" {
		m.notice = out.Notice
		return
	}
	m.notice = "Ringkasan disalin ke clipboard"
}

// openPreview renders the print view into the preview viewport.
func (m *Model) openPreview() {
	out, err := m.ctrl.Preview(context.Background())
	if err != nil {
		m.err = err
		return
	}

	content := out.Job.Text
	if m.renderer != nil {
		rendered, err := m.renderer.Render(out.Job.Markdown)
		if err != nil {
			m.err = err
			return
		}
		content = rendered
	}

	m.preview = viewport.New(m.contentWidth(), m.previewHeight())
	m.preview.SetContent(content)
	m.mode = ModePreview
}
