package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/toilet-monitor/internal/domain"
	"github.com/runoshun/toilet-monitor/internal/testutil"
	"github.com/runoshun/toilet-monitor/internal/usecase"
)

type harness struct {
	storage    *testutil.MockStorage
	downloader *testutil.MockDownloader
	printer    *testutil.MockPrinter
	sharer     *testutil.MockSharer
	model      *Model
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		storage:    testutil.NewMockStorage(),
		downloader: &testutil.MockDownloader{Location: "/tmp/out.csv"},
		printer:    &testutil.MockPrinter{},
		sharer:     &testutil.MockSharer{},
	}
	ctrl := usecase.NewController(usecase.ControllerDeps{
		Storage:    h.storage,
		Downloader: h.downloader,
		Printer:    h.printer,
		Sharer:     h.sharer,
		Clock:      &testutil.MockClock{NowTime: time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)},
	}, usecase.ControllerOptions{
		ResetScope:      domain.ResetScope{ClearDateLabel: true},
		PersistMetadata: true,
	})
	h.model = New(ctrl, Options{})
	return h
}

// start runs the init command and feeds the result back.
func (h *harness) start(t *testing.T) {
	t.Helper()
	msg := h.model.Init()()
	require.IsType(t, MsgStarted{}, msg)
	h.send(msg)
	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	_, cmd := h.model.Update(msg)
	return cmd
}

func (h *harness) press(keys ...string) {
	for _, k := range keys {
		h.send(keyMsg(k))
	}
}

func (h *harness) typeText(s string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func (h *harness) item(t *testing.T, id int) domain.Item {
	t.Helper()
	item, ok := h.model.Checklist().Find(id)
	require.True(t, ok)
	return item
}

func TestUpdate_MsgStarted(t *testing.T) {
	h := newHarness(t)

	h.start(t)

	assert.True(t, h.model.started)
	assert.Equal(t, 14, h.model.Checklist().Len())
	assert.False(t, h.model.unsaved)
	assert.NotNil(t, h.model.meta.LastSavedAt)
}

func TestUpdate_KeysIgnoredBeforeStart(t *testing.T) {
	h := newHarness(t)

	h.press("j", "d")

	assert.Equal(t, 0, h.model.cursor)
	assert.True(t, h.model.Checklist().IsEmpty())
}

func TestUpdate_Navigation(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.press("j", "j")
	assert.Equal(t, 2, h.model.cursor)

	h.press("k")
	assert.Equal(t, 1, h.model.cursor)

	h.press("G")
	assert.Equal(t, 13, h.model.cursor)

	h.press("j")
	assert.Equal(t, 13, h.model.cursor, "cursor stays on the last item")

	h.press("g", "k")
	assert.Equal(t, 0, h.model.cursor)
}

func TestUpdate_ToggleStatus(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.press("j", "j", "space")
	assert.Equal(t, domain.StatusDone, h.item(t, 3).Status)

	h.press("space")
	assert.Equal(t, domain.StatusPending, h.item(t, 3).Status)

	h.press("d")
	assert.Equal(t, domain.StatusDone, h.item(t, 3).Status)
	h.press("u")
	assert.Equal(t, domain.StatusPending, h.item(t, 3).Status)
	assert.Equal(t, domain.StatusPending, h.item(t, 1).Status)
}

func TestUpdate_SaveFailureMarksUnsaved(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	h.storage.SetErr = errors.New("quota exceeded")

	h.press("d")

	assert.True(t, h.model.unsaved)
	assert.Equal(t, domain.StatusDone, h.item(t, 1).Status, "in-memory state stays authoritative")
	assert.Contains(t, h.model.View(), "not saved")

	h.storage.SetErr = nil
	h.press("u")
	assert.False(t, h.model.unsaved)
}

func TestUpdate_EditNote(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.press("j", "n")
	require.Equal(t, ModeEditNote, h.model.Mode())

	h.typeText("bau")
	h.press("enter")

	assert.Equal(t, ModeNormal, h.model.Mode())
	assert.Equal(t, "bau", h.item(t, 2).Note)
	assert.Equal(t, domain.StatusPending, h.item(t, 2).Status)
}

func TestUpdate_EditNote_Cancel(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.press("n")
	h.typeText("draft")
	h.press("esc")

	assert.Equal(t, ModeNormal, h.model.Mode())
	assert.Empty(t, h.item(t, 1).Note)
}

func TestUpdate_EditMetadata(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.press("m")
	require.Equal(t, ModeEditMeta, h.model.Mode())

	h.typeText("Senin, 12/01")
	h.press("tab")
	h.typeText("Lt 2")
	h.press("tab")
	h.typeText("Budi")
	h.press("enter")

	assert.Equal(t, ModeNormal, h.model.Mode())
	assert.Equal(t, "Senin, 12/01", h.model.meta.DateLabel)
	assert.Equal(t, "Lt 2", h.model.meta.Location)
	assert.Equal(t, "Budi", h.model.meta.Coordinator)
	assert.Contains(t, h.storage.Slots[domain.MetadataStorageKey], "Budi")
}

func TestUpdate_MetadataSaveFailureMarksUnsaved(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	h.storage.SetErr = errors.New("read-only file system")

	h.press("m", "tab")
	h.typeText("Lt 3")
	h.press("enter")

	assert.Equal(t, "Lt 3", h.model.meta.Location)
	assert.True(t, h.model.unsaved)
	assert.Contains(t, h.model.View(), "not saved")

	h.storage.SetErr = nil
	h.press("m", "enter")
	assert.False(t, h.model.unsaved)
}

func TestUpdate_ResetConfirm(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		h := newHarness(t)
		h.start(t)
		h.press("d", "n")
		h.typeText("x")
		h.press("enter", "R")
		require.Equal(t, ModeConfirm, h.model.Mode())
		assert.Contains(t, h.model.View(), usecase.ResetPrompt)

		h.press("y")

		assert.Equal(t, ModeNormal, h.model.Mode())
		assert.Equal(t, domain.StatusPending, h.item(t, 1).Status)
		assert.Empty(t, h.item(t, 1).Note)
	})

	t.Run("declined", func(t *testing.T) {
		h := newHarness(t)
		h.start(t)
		h.press("d", "R", "n")

		assert.Equal(t, ModeNormal, h.model.Mode())
		assert.Equal(t, domain.StatusDone, h.item(t, 1).Status)
	})
}

func TestUpdate_ExportAndShare(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.press("e")
	require.Len(t, h.downloader.Files, 1)
	assert.Contains(t, h.model.notice, "/tmp/out.csv")

	h.press("s")
	require.Len(t, h.sharer.Requests, 1)
	assert.Equal(t, "Ringkasan disalin ke clipboard", h.model.notice)
}

func TestUpdate_ShareUnsupportedShowsNotice(t *testing.T) {
	h := newHarness(t)
	h.sharer.Err = domain.ErrShareUnsupported
	h.start(t)

	h.press("s")

	assert.Nil(t, h.model.err)
	assert.Equal(t, domain.ErrShareUnsupported.Error(), h.model.notice)
}

func TestUpdate_ExportErrorShown(t *testing.T) {
	h := newHarness(t)
	h.downloader.Err = errors.New("disk full")
	h.start(t)

	h.press("e")

	require.Error(t, h.model.err)
	assert.Contains(t, h.model.View(), "disk full")

	h.press("j")
	assert.Nil(t, h.model.err, "error clears on the next key")
}

func TestUpdate_PreviewAndPrint(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.press("p")
	require.Equal(t, ModePreview, h.model.Mode())
	assert.Empty(t, h.printer.Jobs, "preview does not print")
	assert.Contains(t, h.model.View(), "Pratinjau cetak")

	cmd := h.send(keyMsg("p"))
	assert.NotNil(t, cmd)

	h.send(MsgPrinted{})
	assert.Equal(t, ModeNormal, h.model.Mode())
	assert.Equal(t, "Laporan dikirim ke printer", h.model.notice)
}

func TestUpdate_PrintExecCmd(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	cmd := &printExecCmd{ctrl: h.model.ctrl}
	require.NoError(t, cmd.Run())

	assert.Len(t, h.printer.Jobs, 1)
}

func TestUpdate_PrintError(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	h.press("p")

	h.send(MsgPrinted{Err: errors.New("lp missing")})

	assert.Equal(t, ModeNormal, h.model.Mode())
	assert.EqualError(t, h.model.err, "lp missing")
}

func TestUpdate_Help(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.press("?")
	assert.Equal(t, ModeHelp, h.model.Mode())
	assert.Contains(t, h.model.View(), "Keybindings")

	h.press("x")
	assert.Equal(t, ModeNormal, h.model.Mode())
}

func TestUpdate_Quit(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	cmd := h.send(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	h.press("n")
	cmd = h.send(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_MsgError(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	h.press("R")

	h.send(MsgError{Err: errors.New("boom")})

	assert.Equal(t, ModeNormal, h.model.Mode())
	assert.Equal(t, ConfirmNone, h.model.confirmAction)
	assert.EqualError(t, h.model.err, "boom")
}
