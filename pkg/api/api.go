// Package api defines the core interfaces and data structures for the expense tracker.
package api

import "iter"

// Expense is a single recorded expense.
// Field order is the key order of the persisted JSON object.
type Expense struct {
	// Date is an ISO calendar date (YYYY-MM-DD), kept as entered.
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Ledger is an ordered, append-only collection of expenses.
// Implementations persist every Add before returning.
type Ledger interface {
	Add(date, category, description string, amount float64) (Expense, error)
	// All yields every expense in insertion order.
	All() iter.Seq[Expense]
	// ByCategory yields expenses whose category matches case-insensitively.
	ByCategory(category string) iter.Seq[Expense]
	// Total returns the sum of all amounts.
	Total() float64
}
