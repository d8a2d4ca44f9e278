// Command expensetracker is an interactive record-keeper for personal expenses.
// Expenses are kept in expenses.json in the working directory.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ArionMiles/expensetracker/pkg/config"
	"github.com/ArionMiles/expensetracker/pkg/logging"
	"github.com/ArionMiles/expensetracker/pkg/store"
	"github.com/ArionMiles/expensetracker/pkg/tracker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Setup(logging.FromConfig(cfg))

	if err := run(logger); err != nil {
		logger.Error("expense tracker failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	expenses, err := store.New(store.Config{FilePath: config.DefaultExpensesFile}, logger.With("component", "store"))
	if err != nil {
		return fmt.Errorf("loading expenses: %w", err)
	}

	t := tracker.New(expenses, os.Stdin, os.Stdout, logger.With("component", "tracker"))
	return t.Run()
}
