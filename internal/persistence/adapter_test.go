package persistence

import (
	"context"
	"testing"

	"github.com/runoshun/toilet-monitor/internal/domain"
	"github.com/runoshun/toilet-monitor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := testutil.NewMockStorage()
	a := New(storage, nil)

	original := domain.NewChecklist(domain.DefaultTemplate()).
		SetStatus(3, domain.StatusDone).
		SetNote(3, "Lantai masih basah").
		SetNote(8, "quote \" comma , newline\nend")

	require.NoError(t, a.Save(ctx, original))

	loaded, ok := a.Load(ctx)
	require.True(t, ok)
	assert.True(t, original.Equal(loaded))
	assert.Equal(t, original.Items(), loaded.Items())
}

func TestAdapter_Save_WritesVersionedSlot(t *testing.T) {
	storage := testutil.NewMockStorage()
	a := New(storage, nil)

	c := domain.NewChecklist(domain.Template{"Menyikat lantai"})
	require.NoError(t, a.Save(context.Background(), c))

	raw, ok := storage.Slots[domain.ChecklistStorageKey]
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":1,"label":"Menyikat lantai","status":"PENDING","note":""}]`, raw)
	assert.Equal(t, "monitoringToiletData_v1", domain.ChecklistStorageKey)
}

func TestAdapter_Load_Absent(t *testing.T) {
	tests := []struct {
		name string
		raw  *string
	}{
		{"empty slot", nil},
		{"empty string", strPtr("")},
		{"not json", strPtr("{oops")},
		{"json object", strPtr(`{"id":1}`)},
		{"null", strPtr("null")},
		{"empty array", strPtr("[]")},
		{"missing label", strPtr(`[{"id":1,"status":"PENDING","note":""}]`)},
		{"wrong type", strPtr(`[{"id":"1","label":"a","status":"PENDING","note":""}]`)},
		{"unknown status", strPtr(`[{"id":1,"label":"a","status":"MAYBE","note":""}]`)},
		{"duplicate ids", strPtr(`[{"id":1,"label":"a","status":"PENDING"},{"id":1,"label":"b","status":"PENDING"}]`)},
		{"trailing garbage", strPtr(`[{"id":1,"label":"a","status":"PENDING"}] x`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := testutil.NewMockStorage()
			if tt.raw != nil {
				storage.Slots[domain.ChecklistStorageKey] = *tt.raw
			}
			a := New(storage, nil)

			_, ok := a.Load(context.Background())
			assert.False(t, ok)
		})
	}
}

func TestAdapter_Load_ReadErrorIsAbsent(t *testing.T) {
	storage := testutil.NewMockStorage()
	storage.GetErr = assert.AnError
	logger := &testutil.MockLogger{}
	a := New(storage, logger)

	_, ok := a.Load(context.Background())

	assert.False(t, ok)
	assert.Equal(t, 1, logger.Count("WARN"))
}

func TestAdapter_Load_LegacyPageData(t *testing.T) {
	storage := testutil.NewMockStorage()
	storage.Slots[domain.ChecklistStorageKey] = `[
		{"id":1,"label":"Menyikat lantai","status":"SUDAH","note":"bersih"},
		{"id":2,"label":"Membersihkan dinding","status":"BELUM"}
	]`
	a := New(storage, nil)

	c, ok := a.Load(context.Background())
	require.True(t, ok)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, domain.StatusDone, items[0].Status)
	assert.Equal(t, "bersih", items[0].Note)
	assert.Equal(t, domain.StatusPending, items[1].Status)
	assert.Empty(t, items[1].Note)
}

func TestAdapter_Save_Error(t *testing.T) {
	storage := testutil.NewMockStorage()
	storage.SetErr = assert.AnError
	a := New(storage, nil)

	err := a.Save(context.Background(), domain.NewChecklist(domain.DefaultTemplate()))
	assert.ErrorIs(t, err, assert.AnError)
}

func TestAdapter_Save_RejectsInvalidUTF8(t *testing.T) {
	ctx := context.Background()
	storage := testutil.NewMockStorage()
	a := New(storage, nil)
	c := domain.NewChecklist(domain.Template{"Menyikat lantai"}).SetNote(1, "rusak\xff")

	err := a.Save(ctx, c)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid UTF-8")
	assert.NotContains(t, storage.Slots, domain.ChecklistStorageKey, "nothing lossy is written")

	err = a.SaveMetadata(ctx, domain.SessionMetadata{Location: "\xffLt 2"})
	require.Error(t, err)
	assert.NotContains(t, storage.Slots, domain.MetadataStorageKey)
}

func TestAdapter_MetadataRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := testutil.NewMockStorage()
	a := New(storage, nil)

	meta := domain.SessionMetadata{
		DateLabel:   "Senin, 6 Januari 2025",
		Location:    "Gedung \"A\"",
		Coordinator: "Budi",
	}
	require.NoError(t, a.SaveMetadata(ctx, meta))

	got, ok := a.LoadMetadata(ctx)
	require.True(t, ok)
	assert.Equal(t, meta, got)
	assert.Nil(t, got.LastSavedAt)
}

func TestAdapter_LoadMetadata_Corrupted(t *testing.T) {
	storage := testutil.NewMockStorage()
	storage.Slots[domain.MetadataStorageKey] = "[1,2"
	a := New(storage, nil)

	_, ok := a.LoadMetadata(context.Background())
	assert.False(t, ok)
}

func strPtr(s string) *string {
	return &s
}
