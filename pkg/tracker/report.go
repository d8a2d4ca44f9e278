package tracker

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ArionMiles/expensetracker/pkg/api"
)

var separator = strings.Repeat("-", 50)

// FormatExpense renders one expense for the full listing.
func FormatExpense(e api.Expense) string {
	return fmt.Sprintf("Date: %s, Category: %s, Description: %s, Amount: $%.2f",
		e.Date, e.Category, e.Description, e.Amount)
}

// FormatCategoryExpense renders one expense for a per-category listing,
// where the category is already in the heading.
func FormatCategoryExpense(e api.Expense) string {
	return fmt.Sprintf("Date: %s, Description: %s, Amount: $%.2f",
		e.Date, e.Description, e.Amount)
}

// writeBlock prints heading, a separator, one line per expense and a closing
// separator. Nothing is printed and false is returned when seq is empty.
func writeBlock(w io.Writer, heading string, seq iter.Seq[api.Expense], format func(api.Expense) string) (bool, error) {
	wrote := false
	for e := range seq {
		if !wrote {
			if _, err := fmt.Fprintf(w, "\n%s\n%s\n", heading, separator); err != nil {
				return false, err
			}
			wrote = true
		}
		if _, err := fmt.Fprintln(w, format(e)); err != nil {
			return true, err
		}
	}
	if !wrote {
		return false, nil
	}
	_, err := fmt.Fprintln(w, separator)
	return true, err
}

// WriteAll prints every expense, or a notice when there are none.
func WriteAll(w io.Writer, seq iter.Seq[api.Expense]) error {
	wrote, err := writeBlock(w, "All Expenses:", seq, FormatExpense)
	if err != nil || wrote {
		return err
	}
	_, err = fmt.Fprintln(w, "No expenses recorded.")
	return err
}

// WriteCategory prints the expenses of one category, or a notice when none match.
func WriteCategory(w io.Writer, category string, seq iter.Seq[api.Expense]) error {
	wrote, err := writeBlock(w, "Expenses in Category: "+category, seq, FormatCategoryExpense)
	if err != nil || wrote {
		return err
	}
	_, err = fmt.Fprintf(w, "No expenses found in category: %s\n", category)
	return err
}

// WriteTotal prints the total rounded to cents.
func WriteTotal(w io.Writer, total float64) error {
	_, err := fmt.Fprintf(w, "\nTotal Expenses: $%.2f\n", total)
	return err
}
