// Package exporter serializes query results to tabular files.
package exporter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"newsagg/internal/model"
)

// ErrUnsupportedFormat is returned for an export format this package does
// not implement. The caller gets no partial output.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// header is the fixed export column set, in order.
var header = []string{"id", "title", "url", "source", "published_at", "summary", "fetched_at"}

// Export writes articles to path in the requested format ("csv", or
// "xlsx"/"excel") and returns the number of rows written. An empty article
// list is a no-op: nothing is written, no file is created, and the returned
// error is nil.
func Export(path, format string, articles []model.Article) (int, error) {
	switch format {
	case "csv":
	case "xlsx", "excel":
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if len(articles) == 0 {
		return 0, nil
	}

	if format == "csv" {
		if err := writeCSV(path, articles); err != nil {
			return 0, err
		}
		return len(articles), nil
	}
	if err := writeXLSX(path, articles); err != nil {
		return 0, err
	}
	return len(articles), nil
}

func row(a model.Article) []string {
	return []string{
		strconv.FormatInt(a.ID, 10),
		a.Title,
		a.URL,
		a.Source,
		a.PublishedAt,
		a.Summary,
		a.FetchedAt,
	}
}

func writeCSV(path string, articles []model.Article) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, a := range articles {
		if err := w.Write(row(a)); err != nil {
			return fmt.Errorf("write row %d: %w", a.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}

func writeXLSX(path string, articles []model.Article) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, a := range articles {
		if err := setRow(f, sheet, i+2, row(a)); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("set row %d: %w", rowNum, err)
	}
	return nil
}
