// Package csv implements a Writer that exports expenses as CSV.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strconv"

	"github.com/ArionMiles/expensetracker/pkg/api"
)

// Writer writes expenses to an io.Writer in CSV format.
type Writer struct {
	writer *csv.Writer
	logger *slog.Logger
}

// New creates a new CSV writer.
func New(w io.Writer, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{
		writer: csv.NewWriter(w),
		logger: logger,
	}
}

func (w *Writer) writeHeaders() error {
	headers := []string{"Date", "Category", "Description", "Amount"}
	return w.writer.Write(headers)
}

// Write writes a header row followed by one row per expense and flushes.
// It returns the number of expense rows written.
func (w *Writer) Write(expenses iter.Seq[api.Expense]) (int, error) {
	if err := w.writeHeaders(); err != nil {
		return 0, fmt.Errorf("writing headers: %w", err)
	}

	count := 0
	for e := range expenses {
		record := []string{
			e.Date,
			e.Category,
			e.Description,
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
		}
		if err := w.writer.Write(record); err != nil {
			return count, fmt.Errorf("writing csv record: %w", err)
		}
		count++
	}

	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return count, fmt.Errorf("flushing csv: %w", err)
	}

	w.logger.Debug("wrote expenses to csv", "count", count)
	return count, nil
}
