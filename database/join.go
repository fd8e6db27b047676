package database

import (
	"kopadb/dberr"
	"kopadb/storage"
)

// InnerJoin pairs every left row with every right row whose key values are
// exactly equal, with no type coercion. Each pair yields a merged row; right
// fields overwrite left fields of the same name.
//
// This is a nested loop over both tables. Indexes on the keys are not used.
func (db *Database) InnerJoin(leftTable, rightTable, leftKey, rightKey string) ([]*storage.Row, error) {
	left, err := db.catalog.GetTable(leftTable)
	if err != nil {
		return nil, err
	}
	right, err := db.catalog.GetTable(rightTable)
	if err != nil {
		return nil, err
	}
	if !left.Schema().Has(leftKey) {
		return nil, dberr.UnknownColumn(leftTable, leftKey)
	}
	if !right.Schema().Has(rightKey) {
		return nil, dberr.UnknownColumn(rightTable, rightKey)
	}

	result := make([]*storage.Row, 0)
	rightRows := right.Rows()
	for _, l := range left.Rows() {
		for _, r := range rightRows {
			if l.Value(leftKey) == r.Value(rightKey) {
				result = append(result, l.Merge(r))
			}
		}
	}
	return result, nil
}
