package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/runoshun/toilet-monitor/internal/domain"
	"github.com/runoshun/toilet-monitor/internal/usecase"
)

const appTitle = "Monitoring Kebersihan Toilet"

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModePreview:
		content = m.viewPreview()
	case ModeNormal, ModeEditNote, ModeEditMeta, ModeConfirm:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the checklist screen.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewMetadata())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	} else if m.notice != "" {
		b.WriteString(m.styles.NoticeMsg.Render(m.notice) + "\n\n")
	}

	if !m.started {
		b.WriteString(m.styles.Footer.Render("Memuat checklist..."))
	} else {
		b.WriteString(m.viewChecklist())
	}

	switch m.mode {
	case ModeNormal, ModePreview, ModeHelp:
		// No overlay
	case ModeEditNote:
		b.WriteString("\n")
		b.WriteString(m.viewNoteInput())
	case ModeEditMeta:
		b.WriteString("\n")
		b.WriteString(m.viewMetaInputs())
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the title with the progress count right-aligned.
func (m *Model) viewHeader() string {
	done, total := m.checklist.Progress()
	rightText := m.styles.Progress.Render(fmt.Sprintf("%d/%d selesai", done, total))

	headerWidth := m.contentWidth()
	titleWidth := headerWidth - lipgloss.Width(rightText) - 1
	titleText := appTitle
	if titleWidth > len(ellipsis) && len(titleText) > titleWidth {
		titleText = truncate.StringWithTail(titleText, uint(titleWidth), ellipsis)
	}
	title := m.styles.HeaderText.Render(titleText)

	spacing := headerWidth - lipgloss.Width(title) - lipgloss.Width(rightText)
	if spacing < 1 {
		spacing = 1
	}

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)
}

// viewMetadata renders the date, location and coordinator line.
func (m *Model) viewMetadata() string {
	field := func(label, value string) string {
		if value == "" {
			value = "-"
		}
		return m.styles.MetaLabel.Render(label+": ") + m.styles.MetaValue.Render(value)
	}
	return field("Hari & Tanggal", m.meta.DateLabel) + "\n" +
		field("Lokasi", m.meta.Location) + "  " +
		field("Koordinator", m.meta.Coordinator)
}

// viewChecklist renders every item with its status badge and note.
func (m *Model) viewChecklist() string {
	items := m.checklist.Items()
	if len(items) == 0 {
		return m.styles.Footer.Render("Checklist kosong")
	}

	rows := make([]string, 0, len(items))
	for i, item := range items {
		rows = append(rows, m.renderItem(item, i == m.cursor))
	}
	return strings.Join(rows, "\n")
}

// renderItem renders one checklist row and, when present, its note.
func (m *Model) renderItem(item domain.Item, selected bool) string {
	cursor := m.styles.CursorNormal.Render("  ")
	labelStyle := m.styles.ItemNormal
	if selected {
		cursor = m.styles.CursorSelected.Render("> ")
		labelStyle = m.styles.ItemSelected
	}

	number := m.styles.ItemNumber.Render(fmt.Sprintf("%d.", item.ID))
	badge := m.styles.StatusStyle(item.Status).Render(item.Status.Label(m.labels))

	prefix := cursor + number + badge + " "
	labelWidth := m.contentWidth() - lipgloss.Width(prefix)
	label := item.Label
	if labelWidth > len(ellipsis) {
		label = truncate.StringWithTail(label, uint(labelWidth), ellipsis)
	}

	row := prefix + labelStyle.Render(label)
	if !item.HasNote() {
		return row
	}

	indent := strings.Repeat(" ", lipgloss.Width(cursor+number))
	note := "Catatan: " + item.Note
	noteWidth := m.contentWidth() - len(indent)
	if noteWidth > len(ellipsis) {
		note = truncate.StringWithTail(note, uint(noteWidth), ellipsis)
	}
	return row + "\n" + indent + m.styles.ItemNote.Render(note)
}

// viewNoteInput renders the note input box for the selected item.
func (m *Model) viewNoteInput() string {
	item, _ := m.SelectedItem()
	title := m.styles.InputPrompt.Render(fmt.Sprintf("Catatan untuk No. %d", item.ID))
	return m.styles.Input.Render(title + "\n" + m.noteInput.View())
}

// viewMetaInputs renders the metadata form.
func (m *Model) viewMetaInputs() string {
	labels := [metaFieldCount]string{
		metaDate:        "Hari & Tanggal",
		metaLocation:    "Lokasi",
		metaCoordinator: "Koordinator",
	}

	lines := make([]string, 0, metaFieldCount)
	for i := range m.metaInputs {
		label := lipgloss.NewStyle().Width(16).Render(labels[i])
		if metaField(i) == m.metaFocus {
			label = m.styles.InputPrompt.Width(16).Render(labels[i])
		}
		lines = append(lines, label+m.metaInputs[i].View())
	}
	return m.styles.Input.Render(strings.Join(lines, "\n"))
}

// viewConfirmDialog renders the confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	var prompt string
	switch m.confirmAction {
	case ConfirmNone:
		return ""
	case ConfirmReset:
		prompt = usecase.ResetPrompt
	}

	color := Colors.Error
	title := m.styles.DialogTitle.Foreground(color).Render("Reset checklist")

	yesBtn := m.styles.HelpKey.Render("[ y ] Ya")
	noBtn := m.styles.Footer.Render("[ n ] Batal")
	buttons := lipgloss.JoinHorizontal(lipgloss.Left, yesBtn, "  ", noBtn)

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.styles.DialogPrompt.Render(prompt),
		"",
		buttons,
	)

	return m.styles.Dialog.BorderForeground(color).Render(content)
}

// viewPreview renders the print preview.
func (m *Model) viewPreview() string {
	var b strings.Builder
	b.WriteString(m.styles.HeaderText.Render("Pratinjau cetak"))
	b.WriteString("\n")
	b.WriteString(m.preview.View())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

// viewHelp renders the help view.
func (m *Model) viewHelp() string {
	title := m.styles.HeaderText.Render("Keybindings")
	body := m.help.FullHelpView(m.keys.FullHelp())
	hint := m.styles.Footer.Render("press any key to close")
	return m.styles.Help.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", hint))
}

// viewFooter renders the status line for the current mode.
func (m *Model) viewFooter() string {
	info := StatusLineInfo{
		KeyHints: m.keyHints(),
		Unsaved:  m.unsaved,
	}
	if m.meta.LastSavedAt != nil {
		info.SavedAt = m.meta.LastSavedAt.Format(savedAtLayout)
	}
	return m.statusLine.Render(info)
}

// keyHints returns the hints shown in the status line.
func (m *Model) keyHints() []KeyHint {
	switch m.mode {
	case ModeEditNote:
		return []KeyHint{{"enter", "simpan"}, {"esc", "batal"}}
	case ModeEditMeta:
		return []KeyHint{{"tab", "field"}, {"enter", "simpan"}, {"esc", "batal"}}
	case ModeConfirm:
		return []KeyHint{{"y", "ya"}, {"n", "batal"}}
	case ModePreview:
		return []KeyHint{{"↑/↓", "scroll"}, {"p", "cetak"}, {"esc", "kembali"}}
	case ModeNormal, ModeHelp:
	}
	return []KeyHint{
		{"j/k", "nav"},
		{"space", "toggle"},
		{"n", "catatan"},
		{"m", "tanggal/lokasi"},
		{"e", "csv"},
		{"p", "print"},
		{"s", "share"},
		{"?", "help"},
		{"q", "quit"},
	}
}
