// Package table renders tabular data as fixed-width text for
// terminal display. Column widths are computed from the display width
// of each cell (CJK and emoji count as two columns, ANSI color
// escapes as zero), so tables line up even when cells mix scripts or
// carry color. It is used to implement --format=table.
package table

import (
	"reflect"
	"strings"
)

// New creates a table with the given column labels and the default
// options: ASCII glyphs, framed horizontal rules, vertical rules
// between all columns, one space of padding, left alignment, header
// shown. The label list may be empty; rendering a table with no
// columns produces the empty string. Labels are assumed unique, since
// sorting and per-column alignment look columns up by label.
func New(columns ...string) *Table {
	return &Table{
		columns: columns,
		config: renderConfig{
			border:  true,
			hrules:  HRulesFrame,
			vrules:  VRulesAll,
			padding: 1,
			header:  true,
			align:   AlignLeft,
			glyphs:  StyleASCII,
		},
	}
}

// FromStructs creates a table from the given slice of structs. The
// column labels come from the "pretty" tag on each struct field. The
// only allowed field types are string and []string; slices are joined
// with commas. Fields that are empty in every element are dropped
// from the table entirely.
func FromStructs(structs interface{}) *Table {
	sv := reflect.ValueOf(structs)
	st := reflect.TypeOf(structs).Elem()

	indices := []int{}
	labels := []string{}
	for i := 0; i < st.NumField(); i++ {
		nonempty := false
		for j := 0; j < sv.Len(); j++ {
			if sv.Index(j).Field(i).Len() > 0 {
				nonempty = true
				break
			}
		}
		if !nonempty {
			continue
		}
		indices = append(indices, i)
		labels = append(labels, st.Field(i).Tag.Get("pretty"))
	}

	t := New(labels...)
	for j := 0; j < sv.Len(); j++ {
		row := []string{}
		for _, i := range indices {
			var value string
			rfield := sv.Index(j).Field(i)
			switch rfield.Kind() {
			case reflect.String:
				value = rfield.String()
			case reflect.Slice:
				parts := []string{}
				for k := 0; k < rfield.Len(); k++ {
					parts = append(parts, rfield.Index(k).String())
				}
				value = strings.Join(parts, ", ")
			}
			row = append(row, value)
		}
		t.AddRow(row...)
	}
	return t
}

// AddRow appends a row at the end of the table. The row does not have
// to match the column count: missing cells render blank, extra cells
// are not displayed.
func (t *Table) AddRow(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// AddRows appends several rows at once.
func (t *Table) AddRows(rows [][]string) *Table {
	t.rows = append(t.rows, rows...)
	return t
}

// SetColumns replaces the column labels wholesale. Rows are kept;
// widths and lookups adjust on the next render.
func (t *Table) SetColumns(columns ...string) *Table {
	t.columns = columns
	return t
}

// Columns returns the column labels in display order.
func (t *Table) Columns() []string {
	return t.columns
}

// columnWidths computes each column's width as the maximum display
// width of its label and every cell at that index. Cells beyond the
// column count are ignored; short rows only contribute to the columns
// they reach.
func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.columns))
	for j, label := range t.columns {
		widths[j] = DisplayWidth(label)
	}
	for _, row := range t.rows {
		for j := 0; j < len(row) && j < len(t.columns); j++ {
			if w := DisplayWidth(row[j]); w > widths[j] {
				widths[j] = w
			}
		}
	}
	return widths
}

// alignFor resolves the alignment for a column label: the per-column
// override if one was set, the table default otherwise.
func (t *Table) alignFor(label string) Alignment {
	if a, ok := t.config.columnAlign[label]; ok {
		return a
	}
	return t.config.align
}

// hrule builds a horizontal rule line: per column, a run of the
// horizontal glyph spanning the column width plus padding on both
// sides. Runs meet at the junction glyph when vertical rules are
// drawn between columns, and at the horizontal glyph itself
// otherwise, so the rule stays visually continuous. With the border
// disabled the rule is the empty string and is not emitted.
func (t *Table) hrule(widths []int) string {
	if !t.config.border {
		return ""
	}
	g := t.config.glyphs
	sep := g.Horizontal
	if t.config.vrules == VRulesAll {
		sep = g.Junction
	}
	edge := ""
	if t.config.vrules == VRulesAll || t.config.vrules == VRulesFrame {
		edge = g.Junction
	}
	runs := make([]string, len(widths))
	for j, w := range widths {
		runs[j] = strings.Repeat(g.Horizontal, w+2*t.config.padding)
	}
	return edge + strings.Join(runs, sep) + edge
}

// rowLine builds one header or data row line. Each cell is padded to
// its column width, surrounded by the configured padding, and joined
// to its neighbor by the vertical glyph, a single space, or nothing,
// depending on the vertical rule mode. A row shorter than the column
// list ends early: no separators or blanks are drawn for the cells it
// does not have.
func (t *Table) rowLine(cells []string, widths []int) string {
	g := t.config.glyphs
	var sep, edge string
	switch t.config.vrules {
	case VRulesAll:
		sep, edge = g.Vertical, g.Vertical
	case VRulesFrame:
		sep, edge = " ", g.Vertical
	}
	pad := strings.Repeat(" ", t.config.padding)
	n := len(cells)
	if n > len(t.columns) {
		n = len(t.columns)
	}
	fields := make([]string, n)
	for j := 0; j < n; j++ {
		padded := Pad(cells[j], widths[j], t.alignFor(t.columns[j]))
		fields[j] = pad + padded + pad
	}
	return edge + strings.Join(fields, sep) + edge
}

// Render produces the whole table as a single string. Lines are
// joined with newlines and there is no trailing newline. Rendering
// reads the table without modifying it, never fails, and returns
// byte-identical output when called again on an unmodified table. A
// table with no columns renders as the empty string.
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}

	widths := t.columnWidths()
	rule := t.hrule(widths)
	rows := t.orderedRows()

	lines := []string{}
	emitRule := func() {
		if rule != "" {
			lines = append(lines, rule)
		}
	}

	if t.config.hrules != HRulesNone {
		emitRule()
	}
	if t.config.header {
		lines = append(lines, t.rowLine(t.columns, widths))
		if t.config.hrules != HRulesNone {
			emitRule()
		}
	}
	for i, row := range rows {
		lines = append(lines, t.rowLine(row, widths))
		if t.config.hrules == HRulesAll && i < len(rows)-1 {
			emitRule()
		}
	}
	if t.config.hrules == HRulesFrame || t.config.hrules == HRulesAll {
		emitRule()
	}

	return strings.Join(lines, "\n")
}

// String renders the table, so tables can be handed to fmt directly.
func (t *Table) String() string {
	return t.Render()
}
