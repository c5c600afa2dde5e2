package exporter

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"newsagg/internal/model"
)

var sample = []model.Article{
	{
		ID:          1,
		Title:       "First, with a comma",
		URL:         "https://example.com/first",
		Source:      "BBC",
		PublishedAt: "2025-03-01T00:00:00Z",
		Summary:     "line one",
		FetchedAt:   "2025-11-01T12:00:00Z",
	},
	{
		ID:        2,
		Title:     "Second",
		FetchedAt: "2025-11-01T12:00:01Z",
	},
}

var wantRows = [][]string{
	{"id", "title", "url", "source", "published_at", "summary", "fetched_at"},
	{"1", "First, with a comma", "https://example.com/first", "BBC", "2025-03-01T00:00:00Z", "line one", "2025-11-01T12:00:00Z"},
	{"2", "Second", "", "", "", "", "2025-11-01T12:00:01Z"},
}

func TestExportUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")

	_, err := Export(path, "pdf", sample)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("expected no file to be created")
	}
}

func TestExportZeroRowsIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	n, err := Export(path, "csv", nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 rows, got %d", n)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("expected destination to be left absent")
	}
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	n, err := Export(path, "csv", sample)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 rows, got %d", n)
	}

	f, err := os.Open(path) //nolint:gosec // test-only temp file
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if diff := cmp.Diff(wantRows, records); diff != "" {
		t.Errorf("csv content mismatch (-want +got):\n%s", diff)
	}
}

func TestExportXLSX(t *testing.T) {
	for _, format := range []string{"xlsx", "excel"} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.xlsx")

			n, err := Export(path, format, sample)
			if err != nil {
				t.Fatalf("export: %v", err)
			}
			if n != 2 {
				t.Errorf("expected 2 rows, got %d", n)
			}

			wb, err := excelize.OpenFile(path)
			if err != nil {
				t.Fatalf("open workbook: %v", err)
			}
			defer func() { _ = wb.Close() }()

			rows, err := wb.GetRows(wb.GetSheetName(0))
			if err != nil {
				t.Fatalf("read rows: %v", err)
			}
			if diff := cmp.Diff(wantRows, rows); diff != "" {
				t.Errorf("sheet content mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
