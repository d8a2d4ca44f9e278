// Package store implements an expense Ledger backed by a single JSON file.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"

	"github.com/ArionMiles/expensetracker/pkg/api"
	"github.com/ArionMiles/expensetracker/pkg/config"
)

// DefaultFilePath is the backing file used when Config.FilePath is empty.
const DefaultFilePath = config.DefaultExpensesFile

// Store keeps expenses in memory and rewrites the backing file after every Add.
// It is not safe for concurrent use, and two processes sharing one file will
// overwrite each other's changes.
type Store struct {
	filePath string
	expenses []api.Expense
	logger   *slog.Logger
}

// Config holds configuration for the JSON store.
type Config struct {
	// FilePath is the path to the JSON backing file.
	FilePath string
}

var _ api.Ledger = (*Store)(nil)

// New creates a store and loads any expenses already present in the backing file.
func New(cfg Config, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.FilePath == "" {
		cfg.FilePath = DefaultFilePath
	}

	expenses, err := Load(cfg.FilePath)
	if err != nil {
		return nil, err
	}

	s := &Store{
		filePath: cfg.FilePath,
		expenses: expenses,
		logger:   logger,
	}

	logger.Debug("expense store loaded", "file", cfg.FilePath, "existing_count", len(expenses))
	return s, nil
}

// Load reads the JSON array stored at path.
// A missing file yields an empty slice; anything else that prevents a clean
// parse is returned as an error.
func Load(path string) ([]api.Expense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []api.Expense{}, nil
		}
		return nil, fmt.Errorf("reading expenses file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var expenses []api.Expense
	if err := dec.Decode(&expenses); err != nil {
		return nil, fmt.Errorf("parsing expenses file %s: %w", path, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing expenses file %s: trailing data after array", path)
	}

	if expenses == nil {
		expenses = []api.Expense{}
	}
	return expenses, nil
}

// save writes the entire expense list to the backing file.
func (s *Store) save() error {
	// Write entire array to file (JSON doesn't support appending)
	data, err := json.MarshalIndent(s.expenses, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling json: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0o600); err != nil {
		return fmt.Errorf("writing expenses file: %w", err)
	}

	s.logger.Debug("wrote expenses to json", "total_count", len(s.expenses))
	return nil
}

// Add appends an expense and persists the full list before returning.
// Callers are expected to have validated the inputs.
// On a write error the expense stays in memory and the file is stale.
func (s *Store) Add(date, category, description string, amount float64) (api.Expense, error) {
	e := api.Expense{
		Date:        date,
		Category:    category,
		Description: description,
		Amount:      amount,
	}
	s.expenses = append(s.expenses, e)

	if err := s.save(); err != nil {
		return api.Expense{}, err
	}

	s.logger.Info("expense added", "date", date, "category", category, "amount", amount)
	return e, nil
}

// All yields every expense in insertion order.
func (s *Store) All() iter.Seq[api.Expense] {
	return func(yield func(api.Expense) bool) {
		for _, e := range s.expenses {
			if !yield(e) {
				return
			}
		}
	}
}

// ByCategory yields the expenses whose lowercased category equals the
// lowercased argument, in insertion order.
func (s *Store) ByCategory(category string) iter.Seq[api.Expense] {
	want := strings.ToLower(category)
	return func(yield func(api.Expense) bool) {
		for _, e := range s.expenses {
			if strings.ToLower(e.Category) != want {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Total returns the floating-point sum of every amount.
func (s *Store) Total() float64 {
	var total float64
	for _, e := range s.expenses {
		total += e.Amount
	}
	return total
}

// Len returns the number of stored expenses.
func (s *Store) Len() int {
	return len(s.expenses)
}

// FilePath returns the backing file path.
func (s *Store) FilePath() string {
	return s.filePath
}
