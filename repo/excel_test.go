package repo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRegenerateWritesSnapshot(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Save(ctx, testRegistration("Aziz Karimov", "2025-03-10 12:30:00")))
	require.NoError(t, store.Save(ctx, testRegistration("Bonu Alimova", "2025-03-11 09:00:00")))

	path := filepath.Join(t.TempDir(), "export", "registrations.xlsx")
	exporter := NewExporter(store, path)

	got, err := exporter.Regenerate(ctx)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, columns, rows[0])
	// Newest first.
	assert.Equal(t, "Bonu Alimova", rows[1][3])
	assert.Equal(t, "Aziz Karimov", rows[2][3])
	assert.Equal(t, "2025-03-10 12:30:00", rows[2][13])
}

func TestRegenerateOverwritesExistingFile(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	path := filepath.Join(t.TempDir(), "registrations.xlsx")
	exporter := NewExporter(store, path)

	_, err := exporter.Regenerate(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, testRegistration("Aziz Karimov", "2025-03-10 12:30:00")))
	_, err = exporter.Regenerate(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestRegenerateEmptyStoreWritesHeaderOnly(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	path := filepath.Join(t.TempDir(), "registrations.xlsx")

	_, err := NewExporter(store, path).Regenerate(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, columns, rows[0])
}
