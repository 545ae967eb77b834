package exporter

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vfg2006/growth-dashboard-api/internal/domain"
)

const SinkCSV = "csv"

// CSVExporter grava as linhas em um arquivo CSV, substituindo o arquivo anterior
type CSVExporter struct {
	path string
}

func NewCSVExporter(path string) *CSVExporter {
	return &CSVExporter{path: path}
}

func (e *CSVExporter) Name() string { return SinkCSV }

// Write escreve em um arquivo temporário e renomeia, para nunca deixar um CSV pela metade
func (e *CSVExporter) Write(ctx context.Context, _ string, rows []domain.MergedRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(e.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(e.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("csv: failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteCSV(tmp, rows); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("csv: failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), e.path); err != nil {
		return fmt.Errorf("csv: failed to replace %s: %w", e.path, err)
	}

	return nil
}

// WriteCSV escreve o cabeçalho e as linhas. meta_actions vai unido por " | ".
func WriteCSV(w io.Writer, rows []domain.MergedRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(domain.MergedRowColumns); err != nil {
		return fmt.Errorf("csv: failed to write header: %w", err)
	}

	for _, row := range rows {
		if err := writer.Write(row.Record()); err != nil {
			return fmt.Errorf("csv: failed to write row %s: %w", row.Date, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
