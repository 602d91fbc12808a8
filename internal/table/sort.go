package table

import "sort"

// orderedRows returns the rows in display order. Without a sort
// directive, or when the directive names a column that does not
// exist, that is insertion order and the rows come back untouched.
// Otherwise the rows are copied and stably sorted by the ordinal
// comparison of each row's sort key: the cell under the sort column,
// run through the directive's transform when one is set. Cells a
// short row does not have compare as empty strings. Descending order
// flips the comparison, not the result, so rows with equal keys keep
// their insertion order either way. The transform runs exactly once
// per row.
func (t *Table) orderedRows() [][]string {
	d := t.config.sort
	if d == nil {
		return t.rows
	}

	index := -1
	for i, label := range t.columns {
		if label == d.column {
			index = i
			break
		}
	}
	if index < 0 {
		return t.rows
	}

	keys := make([]string, len(t.rows))
	for i, row := range t.rows {
		key := ""
		if index < len(row) {
			key = row[index]
		}
		if d.transform != nil {
			key = d.transform(key)
		}
		keys[i] = key
	}

	order := make([]int, len(t.rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		if d.order == Descending {
			return keys[order[j]] < keys[order[i]]
		}
		return keys[order[i]] < keys[order[j]]
	})

	sorted := make([][]string, len(t.rows))
	for i, idx := range order {
		sorted[i] = t.rows[idx]
	}
	return sorted
}
