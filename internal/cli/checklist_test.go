package cli

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/toilet-monitor/internal/domain"
	"github.com/runoshun/toilet-monitor/internal/testutil"
	"github.com/runoshun/toilet-monitor/internal/usecase"
)

// =============================================================================
// Show Command Tests
// =============================================================================

func TestShowCommand_FreshChecklist(t *testing.T) {
	// Setup
	env := newTestEnv(t)

	// Execute
	out, _, err := env.run("show")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "Hari & Tanggal: -")
	assert.Contains(t, out, "Lokasi: - | Koordinator: -")
	assert.Contains(t, out, "Progres: 0/14")
	assert.Contains(t, out, "Terakhir disimpan: 15/10/2026 09:30:00")
	assert.Contains(t, out, "NO  STATUS")
	assert.Contains(t, out, "Menyikat lantai")
	assert.Contains(t, out, "BELUM")
	assert.Contains(t, env.storage.Slots, domain.ChecklistStorageKey, "seeded checklist is saved")
}

func TestShowCommand_JSON(t *testing.T) {
	// Setup
	env := newTestEnv(t)
	_, _, err := env.run("set", "2", "done")
	require.NoError(t, err)

	// Execute
	out, _, err := env.run("show", "--json")

	// Assert
	require.NoError(t, err)
	var got struct {
		Items []struct {
			Label  string `json:"label"`
			Status string `json:"status"`
			ID     int    `json:"id"`
		} `json:"items"`
		Done  int `json:"done"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, got.Done)
	assert.Equal(t, 14, got.Total)
	assert.Equal(t, "DONE", got.Items[1].Status)
}

func TestShowCommand_SaveFailureWarns(t *testing.T) {
	// Setup
	env := newTestEnv(t)
	env.storage.SetErr = errors.New("read-only file system")

	// Execute
	out, errOut, err := env.run("show")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "Terakhir disimpan: -")
	assert.Contains(t, errOut, "Warning: checklist not saved")
}

// =============================================================================
// Set Command Tests
// =============================================================================

func TestSetCommand(t *testing.T) {
	// Setup
	env := newTestEnv(t)

	// Execute
	out, _, err := env.run("set", "3", "sudah")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "No. 3 Mengosongkan tempat sampah: SUDAH (1/14)")
	assert.Equal(t, domain.StatusDone, env.item(t, 3).Status)
	assert.Equal(t, domain.StatusPending, env.item(t, 2).Status)
}

func TestSetCommand_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		args    []string
	}{
		{name: "invalid status", args: []string{"set", "1", "maybe"}, wantErr: domain.ErrInvalidStatus},
		{name: "unknown item", args: []string{"set", "99", "done"}, wantErr: domain.ErrItemNotFound},
		{name: "invalid id", args: []string{"set", "abc", "done"}, wantErr: domain.ErrInvalidItemID},
		{name: "zero id", args: []string{"set", "0", "done"}, wantErr: domain.ErrInvalidItemID},
		{name: "trailing junk", args: []string{"set", "3abc", "done"}, wantErr: domain.ErrInvalidItemID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			_, _, err := env.run(tt.args...)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSetCommand_SaveFailureWarns(t *testing.T) {
	// Setup
	env := newTestEnv(t)
	_, _, err := env.run("show")
	require.NoError(t, err)
	env.storage.SetErr = errors.New("disk full")

	// Execute
	out, errOut, err := env.run("set", "1", "done")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "SUDAH")
	assert.Contains(t, errOut, "not saved")
}

// =============================================================================
// Note Command Tests
// =============================================================================

func TestNoteCommand(t *testing.T) {
	// Setup
	env := newTestEnv(t)

	// Execute
	out, _, err := env.run("note", "#4", "saringan", "tersumbat")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "Updated note of item #4")
	assert.Equal(t, "saringan tersumbat", env.item(t, 4).Note)
	assert.Equal(t, domain.StatusPending, env.item(t, 4).Status)

	// Clearing
	out, _, err = env.run("note", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared note of item #4")
	assert.Empty(t, env.item(t, 4).Note)
}

func TestNoteCommand_UnknownItem(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("note", "15", "x")

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

// =============================================================================
// Meta Command Tests
// =============================================================================

func TestMetaCommand(t *testing.T) {
	// Setup
	env := newTestEnv(t)

	// Execute
	out, _, err := env.run("meta", "--date", "Senin, 12/01/2026", "--location", "Gedung A Lt 2")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "Hari & Tanggal: Senin, 12/01/2026")
	assert.Contains(t, out, "Lokasi: Gedung A Lt 2")
	assert.Contains(t, out, "Koordinator: -")

	// Only changed flags are applied
	out, _, err = env.run("meta", "--coordinator", "Budi")
	require.NoError(t, err)
	assert.Contains(t, out, "Lokasi: Gedung A Lt 2")
	assert.Contains(t, out, "Koordinator: Budi")

	// Empty value clears
	out, _, err = env.run("meta", "--location", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Lokasi: -")
}

// =============================================================================
// Reset Command Tests
// =============================================================================

func TestResetCommand_Yes(t *testing.T) {
	// Setup
	env := newTestEnv(t)
	_, _, err := env.run("set", "1", "done")
	require.NoError(t, err)
	_, _, err = env.run("note", "1", "ok")
	require.NoError(t, err)
	_, _, err = env.run("meta", "--location", "Lt 1", "--date", "Senin")
	require.NoError(t, err)

	// Execute
	out, _, err := env.run("reset", "--yes")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "Reset 14 items")
	item := env.item(t, 1)
	assert.Equal(t, domain.StatusPending, item.Status)
	assert.Empty(t, item.Note)
	assert.Equal(t, "Menyikat lantai", item.Label)

	meta, _, err := env.run("meta")
	require.NoError(t, err)
	assert.Contains(t, meta, "Lokasi: -")
	assert.Contains(t, meta, "Hari & Tanggal: -")
}

func TestResetCommand_Declined(t *testing.T) {
	// Setup
	env := newTestEnv(t)
	prompt := &testutil.MockConfirmer{Answer: false}
	env.container.Prompt = prompt
	_, _, err := env.run("set", "1", "done")
	require.NoError(t, err)

	// Execute
	out, _, err := env.run("reset")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "Reset cancelled")
	assert.Equal(t, []string{usecase.ResetPrompt}, prompt.Prompts)
	assert.Equal(t, domain.StatusDone, env.item(t, 1).Status)
}

func TestResetCommand_Confirmed(t *testing.T) {
	env := newTestEnv(t)
	env.container.Prompt = &testutil.MockConfirmer{Answer: true}
	_, _, err := env.run("set", "1", "done")
	require.NoError(t, err)

	_, _, err = env.run("reset")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, env.item(t, 1).Status)
}

func TestParseItemID(t *testing.T) {
	id, err := parseItemID("#7")
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	for _, in := range []string{"-1", "3abc", "1.5", "#", ""} {
		_, err = parseItemID(in)
		assert.ErrorIs(t, err, domain.ErrInvalidItemID, in)
	}
}
