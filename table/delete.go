package table

import "kopadb/storage"

// Delete removes the rows matching filters and returns how many were removed.
// An empty filter list removes every row.
func (t *Table) Delete(filters []Filter) (int, error) {
	matched, err := t.Select(filters)
	if err != nil {
		return 0, err
	}
	if len(matched) == 0 {
		return 0, nil
	}

	doomed := make(map[*storage.Row]bool, len(matched))
	for _, r := range matched {
		doomed[r] = true
		t.removeFromIndexes(r)
	}

	kept := make([]*storage.Row, 0, len(t.rows)-len(matched))
	for _, r := range t.rows {
		if !doomed[r] {
			kept = append(kept, r)
		}
	}
	t.rows = kept
	return len(matched), nil
}
