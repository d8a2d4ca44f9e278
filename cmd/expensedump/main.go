// Command expensedump prints the expenses in expenses.json as CSV on stdout.
package main

import (
	"fmt"
	"os"

	"github.com/ArionMiles/expensetracker/pkg/config"
	"github.com/ArionMiles/expensetracker/pkg/logging"
	"github.com/ArionMiles/expensetracker/pkg/store"
	"github.com/ArionMiles/expensetracker/pkg/writer/csv"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.Setup(logging.FromConfig(cfg))

	expenses, err := store.New(store.Config{FilePath: config.DefaultExpensesFile}, logger.With("component", "store"))
	if err != nil {
		logger.Error("failed to load expenses", "error", err)
		os.Exit(1)
	}

	count, err := csv.New(os.Stdout, logger.With("component", "csv_writer")).Write(expenses.All())
	if err != nil {
		logger.Error("failed to write csv", "error", err)
		os.Exit(1)
	}

	logger.Info("dump complete", "file", expenses.FilePath(), "count", count)
}
