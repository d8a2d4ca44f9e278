package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArionMiles/expensetracker/pkg/api"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "expenses.json")
	s, err := New(Config{FilePath: path}, nil)
	require.NoError(t, err)
	return s, path
}

func addAll(t *testing.T, s *Store, expenses []api.Expense) {
	t.Helper()
	for _, e := range expenses {
		_, err := s.Add(e.Date, e.Category, e.Description, e.Amount)
		require.NoError(t, err)
	}
}

var sample = []api.Expense{
	{Date: "2024-01-15", Category: "Food", Description: "Lunch", Amount: 12.5},
	{Date: "2024-01-02", Category: "Rent", Description: "January rent", Amount: 950},
	{Date: "2024-01-20", Category: "food", Description: "Groceries", Amount: 43.17},
	{Date: "2024-01-20", Category: "Utilities", Description: "Power", Amount: 61.02},
	{Date: "2024-01-15", Category: "Food", Description: "Lunch", Amount: 12.5},
}

func TestNew_DefaultFilePath(t *testing.T) {
	t.Chdir(t.TempDir())

	s, err := New(Config{}, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultFilePath, s.FilePath())
	assert.Equal(t, "expenses.json", s.FilePath())
}

func TestNew_MissingFileBootstrap(t *testing.T) {
	s, path := newTestStore(t)

	assert.Equal(t, 0, s.Len())
	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist, "constructing a store must not create the file")

	added, err := s.Add("2024-01-15", "Food", "Lunch", 12.5)
	require.NoError(t, err)
	assert.Equal(t, api.Expense{Date: "2024-01-15", Category: "Food", Description: "Lunch", Amount: 12.5}, added)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, map[string]any{
		"date":        "2024-01-15",
		"category":    "Food",
		"description": "Lunch",
		"amount":      12.5,
	}, raw[0])
}

func TestSave_KeyOrderAndIndent(t *testing.T) {
	s, path := newTestStore(t)
	_, err := s.Add("2024-01-15", "Food", "Lunch", 12.5)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	dateIdx := strings.Index(text, `"date"`)
	categoryIdx := strings.Index(text, `"category"`)
	descriptionIdx := strings.Index(text, `"description"`)
	amountIdx := strings.Index(text, `"amount"`)
	assert.True(t, dateIdx < categoryIdx && categoryIdx < descriptionIdx && descriptionIdx < amountIdx,
		"unexpected key order in %s", text)
	assert.Contains(t, text, "\n        \"date\": \"2024-01-15\"")
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 3, len(sample)} {
		s, path := newTestStore(t)
		addAll(t, s, sample[:n])
		// Covers N=0, where Add never ran.
		require.NoError(t, s.save())

		loaded, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, sample[:n], loaded, "n=%d", n)

		reopened, err := New(Config{FilePath: path}, nil)
		require.NoError(t, err)
		got := slices.Collect(reopened.All())
		require.Len(t, got, n)
		if n > 0 {
			assert.Equal(t, sample[:n], got, "n=%d", n)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	expenses, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.NotNil(t, expenses)
	assert.Empty(t, expenses)
}

func TestLoad_Null(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.json")
	require.NoError(t, os.WriteFile(path, []byte("null"), 0o600))

	expenses, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"truncated", `[{"date": "2024-01-15", "category": "Fo`},
		{"object instead of array", `{"date": "2024-01-15"}`},
		{"amount as string", `[{"date": "2024-01-15", "category": "Food", "description": "Lunch", "amount": "12.5"}]`},
		{"unknown key", `[{"date": "2024-01-15", "category": "Food", "description": "Lunch", "amount": 1, "currency": "EUR"}]`},
		{"trailing data", `[] []`},
		{"trailing bracket", `[]]`},
		{"trailing brace", `[]}`},
		{"trailing bracket after records", `[{"date": "2024-01-15", "category": "Food", "description": "Lunch", "amount": 1}]]`},
		{"trailing text", `[] x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "expenses.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := Load(path)
			require.Error(t, err)

			_, err = New(Config{FilePath: path}, nil)
			require.Error(t, err)
		})
	}
}

func TestLoad_TrailingWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.json")
	require.NoError(t, os.WriteFile(path, []byte("[]\n\n"), 0o600))

	expenses, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestLoad_ReadError(t *testing.T) {
	// A directory cannot be read as a file.
	_, err := Load(t.TempDir())
	require.Error(t, err)
}

func TestAdd_WriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "expenses.json")
	s, err := New(Config{FilePath: path}, nil)
	require.NoError(t, err)

	_, err = s.Add("2024-01-15", "Food", "Lunch", 12.5)
	require.Error(t, err)
	assert.Equal(t, 1, s.Len(), "the in-memory append is kept")
}

func TestAdd_AllowsDuplicates(t *testing.T) {
	s, path := newTestStore(t)
	addAll(t, s, sample[:1])
	addAll(t, s, sample[:1])

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []api.Expense{sample[0], sample[0]}, loaded)
}

func TestAll(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Empty(t, slices.Collect(s.All()))

	addAll(t, s, sample)

	first := slices.Collect(s.All())
	second := slices.Collect(s.All())
	assert.Equal(t, sample, first, "insertion order, not date order")
	assert.Equal(t, first, second)

	var got []api.Expense
	for e := range s.All() {
		got = append(got, e)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, sample[:2], got)
}

func TestByCategory(t *testing.T) {
	s, _ := newTestStore(t)
	addAll(t, s, sample)

	tests := []struct {
		category string
		want     []api.Expense
	}{
		{"Food", []api.Expense{sample[0], sample[2], sample[4]}},
		{"food", []api.Expense{sample[0], sample[2], sample[4]}},
		{"FOOD", []api.Expense{sample[0], sample[2], sample[4]}},
		{"rent", []api.Expense{sample[1]}},
		{"Foo", nil},
		{"Food ", nil},
		{"", nil},
		{"Travel", nil},
	}

	for _, tt := range tests {
		got := slices.Collect(s.ByCategory(tt.category))
		assert.Equal(t, tt.want, got, "category %q", tt.category)
	}
}

func TestByCategory_MatchesExactlyLowercasedSubset(t *testing.T) {
	s, _ := newTestStore(t)
	addAll(t, s, sample)

	for _, c := range []string{"food", "RENT", "utilities", "other"} {
		var want []api.Expense
		for _, e := range sample {
			if strings.ToLower(e.Category) == strings.ToLower(c) {
				want = append(want, e)
			}
		}
		assert.Equal(t, want, slices.Collect(s.ByCategory(c)), "category %q", c)
	}
}

func TestTotal(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Zero(t, s.Total())

	addAll(t, s, []api.Expense{
		{Date: "2024-01-01", Category: "A", Description: "a", Amount: 10.00},
		{Date: "2024-01-02", Category: "B", Description: "b", Amount: 5.50},
		{Date: "2024-01-03", Category: "C", Description: "c", Amount: -2.00},
	})
	assert.InDelta(t, 13.50, s.Total(), 1e-9)
}

func TestTotal_MatchesSum(t *testing.T) {
	s, _ := newTestStore(t)
	addAll(t, s, sample)

	var want float64
	for _, e := range sample {
		want += e.Amount
	}
	assert.Equal(t, want, s.Total())
}
