package table

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dataLines renders the table without decoration and returns each
// data row's cells, so tests can assert on row order alone.
func dataLines(t *Table) [][]string {
	t.SetBorder(false).SetHRules(HRulesNone).SetVRules(VRulesNone).SetHeader(false)
	lines := strings.Split(t.Render(), "\n")
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = strings.Fields(line)
	}
	return rows
}

func TestSortAscending(t *testing.T) {
	tbl := New("Name", "Age").
		AddRow("Charlie", "35").
		AddRow("Alice", "30").
		AddRow("Bob", "25").
		SortBy("Name")
	assert.Equal(t, [][]string{
		{"Alice", "30"},
		{"Bob", "25"},
		{"Charlie", "35"},
	}, dataLines(tbl))
}

func TestSortDescending(t *testing.T) {
	tbl := New("Name", "Age").
		AddRow("Charlie", "35").
		AddRow("Alice", "30").
		AddRow("Bob", "25").
		SortBy("Name").
		SetSortOrder(Descending)
	assert.Equal(t, [][]string{
		{"Charlie", "35"},
		{"Bob", "25"},
		{"Alice", "30"},
	}, dataLines(tbl))
}

func TestSortStable(t *testing.T) {
	tbl := New("Group", "Name").
		AddRow("b", "first").
		AddRow("a", "second").
		AddRow("b", "third").
		AddRow("a", "fourth").
		SortBy("Group")
	assert.Equal(t, [][]string{
		{"a", "second"},
		{"a", "fourth"},
		{"b", "first"},
		{"b", "third"},
	}, dataLines(tbl))
}

func TestSortStableDescending(t *testing.T) {
	// Descending flips the comparison, not the final sequence, so
	// equal keys still keep insertion order.
	tbl := New("Group", "Name").
		AddRow("a", "first").
		AddRow("b", "second").
		AddRow("a", "third").
		SortBy("Group").
		SetSortOrder(Descending)
	assert.Equal(t, [][]string{
		{"b", "second"},
		{"a", "first"},
		{"a", "third"},
	}, dataLines(tbl))
}

func TestSortNumericViaTransform(t *testing.T) {
	tbl := New("Name", "Age").
		AddRow("Alice", "30").
		AddRow("Bob", "5").
		AddRow("Carol", "100").
		SortBy("Age").
		SetSortKey(func(s string) string { return fmt.Sprintf("%05s", s) })
	assert.Equal(t, [][]string{
		{"Bob", "5"},
		{"Alice", "30"},
		{"Carol", "100"},
	}, dataLines(tbl))
}

func TestSortUnknownColumnKeepsOrder(t *testing.T) {
	tbl := New("Name").
		AddRow("Charlie").
		AddRow("Alice").
		SortBy("Nope")
	assert.Equal(t, [][]string{
		{"Charlie"},
		{"Alice"},
	}, dataLines(tbl))
}

func TestSortMissingCellsCompareEmpty(t *testing.T) {
	tbl := New("Name", "Age").
		AddRow("Alice", "30").
		AddRow("Shorty").
		AddRow("Bob", "25").
		SortBy("Age")
	assert.Equal(t, [][]string{
		{"Shorty"},
		{"Bob", "25"},
		{"Alice", "30"},
	}, dataLines(tbl))
}

func TestSortDoesNotMutateRows(t *testing.T) {
	tbl := New("Name").
		AddRow("b").
		AddRow("a").
		SortBy("Name")
	require.NotEmpty(t, tbl.Render())
	// The stored rows stay in insertion order; only the rendered
	// sequence changes.
	assert.Equal(t, [][]string{{"b"}, {"a"}}, tbl.rows)
}

func TestSortTransformRunsOncePerRow(t *testing.T) {
	calls := 0
	tbl := New("Name").
		AddRow("b").
		AddRow("a").
		AddRow("c").
		SortBy("Name").
		SetSortKey(func(s string) string {
			calls++
			return s
		})
	tbl.Render()
	assert.Equal(t, 3, calls)
	tbl.Render()
	assert.Equal(t, 6, calls)
}
