// Package tracker implements the interactive menu that drives an expense Ledger.
package tracker

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ArionMiles/expensetracker/pkg/api"
)

const menu = `
Expense Tracker Menu
1. Add Expense
2. View All Expenses
3. View Expenses by Category
4. Calculate Total Expenses
5. Exit
`

// Menu choices.
const (
	ChoiceAdd        = "1"
	ChoiceViewAll    = "2"
	ChoiceByCategory = "3"
	ChoiceTotal      = "4"
	ChoiceExit       = "5"
)

// Tracker reads menu choices from in and writes prompts and listings to out.
type Tracker struct {
	ledger api.Ledger
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
}

// New creates a tracker for the given ledger.
func New(ledger api.Ledger, in io.Reader, out io.Writer, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		ledger: ledger,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// Run shows the menu until the user exits or input ends.
// It returns a non-nil error only when the ledger or the output fails.
func (t *Tracker) Run() error {
	for {
		done, err := t.step()
		if errors.Is(err, io.EOF) {
			t.logger.Debug("input closed, stopping")
			return nil
		}
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// step handles one menu choice and reports whether the loop should stop.
func (t *Tracker) step() (bool, error) {
	if _, err := fmt.Fprint(t.out, menu); err != nil {
		return false, err
	}
	choice, err := t.prompt("Enter your choice: ")
	if err != nil {
		return false, err
	}

	switch choice {
	case ChoiceAdd:
		return false, t.add()
	case ChoiceViewAll:
		return false, WriteAll(t.out, t.ledger.All())
	case ChoiceByCategory:
		category, err := t.prompt("Enter category to view: ")
		if err != nil {
			return false, err
		}
		return false, WriteCategory(t.out, category, t.ledger.ByCategory(category))
	case ChoiceTotal:
		return false, WriteTotal(t.out, t.ledger.Total())
	case ChoiceExit:
		_, err := fmt.Fprintln(t.out, "Exiting Expense Tracker. Goodbye!")
		return true, err
	default:
		t.logger.Debug("unrecognized menu choice", "choice", choice)
		_, err := fmt.Fprintln(t.out, "Invalid choice. Please try again.")
		return false, err
	}
}

// add collects and validates the fields of a new expense. Validation
// failures are reported to the user and leave the ledger untouched.
func (t *Tracker) add() error {
	rawDate, err := t.prompt("Enter date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	date, err := ParseDate(rawDate)
	if err != nil {
		_, werr := fmt.Fprintln(t.out, "Invalid date format. Please use YYYY-MM-DD.")
		return werr
	}

	category, err := t.prompt("Enter category (e.g., Food, Rent, Utilities): ")
	if err != nil {
		return err
	}
	description, err := t.prompt("Enter description: ")
	if err != nil {
		return err
	}

	rawAmount, err := t.prompt("Enter amount: ")
	if err != nil {
		return err
	}
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		_, werr := fmt.Fprintln(t.out, "Invalid amount. Please enter a valid number.")
		return werr
	}

	if _, err := t.ledger.Add(date, category, description, amount); err != nil {
		return fmt.Errorf("adding expense: %w", err)
	}

	_, err = fmt.Fprintln(t.out, "Expense added successfully!")
	return err
}

// prompt prints msg and reads one line without its line ending.
// A final line that lacks a newline is still returned; io.EOF follows on the next call.
func (t *Tracker) prompt(msg string) (string, error) {
	if _, err := fmt.Fprint(t.out, msg); err != nil {
		return "", err
	}

	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimLineEnding(line), nil
		}
		return "", err
	}
	return trimLineEnding(line), nil
}

func trimLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
