package table

// All setters return the table itself so options chain fluently:
//
//	table.New("Name", "Age").SetPadding(2).SortBy("Age").Render()

// SetBorder enables or disables horizontal rule drawing. With the
// border off, rules disappear from the output entirely no matter
// which rule modes are set; vertical glyphs on row lines are governed
// by the vertical rule mode alone.
func (t *Table) SetBorder(on bool) *Table {
	t.config.border = on
	return t
}

// SetHRules selects which horizontal rules are drawn.
func (t *Table) SetHRules(mode HRuleMode) *Table {
	t.config.hrules = mode
	return t
}

// SetVRules selects which vertical rules are drawn.
func (t *Table) SetVRules(mode VRuleMode) *Table {
	t.config.vrules = mode
	return t
}

// SetPadding sets the number of spaces on each side of every cell.
// Negative values clamp to zero here, at assignment, so render time
// never sees an invalid width.
func (t *Table) SetPadding(width int) *Table {
	if width < 0 {
		width = 0
	}
	t.config.padding = width
	return t
}

// SetHeader shows or hides the header row.
func (t *Table) SetHeader(on bool) *Table {
	t.config.header = on
	return t
}

// SetAlignment sets the default alignment for every column that has
// no per-column override.
func (t *Table) SetAlignment(align Alignment) *Table {
	t.config.align = align
	return t
}

// SetColumnAlignment overrides the alignment of the column with the
// given label. An override for a label no current column carries is
// kept but has no effect.
func (t *Table) SetColumnAlignment(label string, align Alignment) *Table {
	if t.config.columnAlign == nil {
		t.config.columnAlign = map[string]Alignment{}
	}
	t.config.columnAlign[label] = align
	return t
}

// SetGlyphs replaces the rule-drawing characters.
func (t *Table) SetGlyphs(g Glyphs) *Table {
	t.config.glyphs = g
	return t
}

func (t *Table) ensureSort() *sortDirective {
	if t.config.sort == nil {
		t.config.sort = &sortDirective{}
	}
	return t.config.sort
}

// SortBy sorts rows by the column with the given label before
// rendering. A label that matches no column leaves the rows in
// insertion order; that is defined behavior, not an error.
func (t *Table) SortBy(column string) *Table {
	t.ensureSort().column = column
	return t
}

// SetSortOrder sets the sort direction. Ascending is the default.
func (t *Table) SetSortOrder(order SortOrder) *Table {
	t.ensureSort().order = order
	return t
}

// SetSortKey sets a transform applied to each cell of the sort column
// before comparison. Keys are still compared as strings, so numeric
// or version ordering is expressed by transforms that produce
// ordinally sortable forms, zero-padding for instance. The transform
// must be pure; it runs once per row on every render.
func (t *Table) SetSortKey(transform func(string) string) *Table {
	t.ensureSort().transform = transform
	return t
}
