package repo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Exporter regenerates the Excel snapshot of all saved registrations.
// Every run is a full refresh: one row per record, newest first, header
// row matching the table columns, overwriting any existing file.
type Exporter struct {
	store *Store
	path  string
}

// NewExporter returns an exporter writing to path.
func NewExporter(store *Store, path string) *Exporter {
	return &Exporter{store: store, path: path}
}

// Regenerate rewrites the snapshot and returns its path.
func (e *Exporter) Regenerate(ctx context.Context) (string, error) {
	regs, err := e.store.ListAll(ctx)
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", fmt.Errorf("write header row: %w", err)
	}

	for i, r := range regs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("row coordinates: %w", err)
		}
		row := []any{
			r.ID, r.TelegramID, r.TelegramUsername, r.FullName, r.Workplace,
			r.CareerField, r.Interests, r.NetworkingGoals, r.Region, r.Languages,
			r.Topics, r.MeetFormat, r.SelfDesc, r.CreatedAt,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return "", fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(e.path), 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	if err := f.SaveAs(e.path); err != nil {
		return "", fmt.Errorf("save excel file: %w", err)
	}
	return e.path, nil
}
