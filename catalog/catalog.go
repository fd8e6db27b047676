package catalog

import (
	"kopadb/dberr"
	"kopadb/table"
)

// Catalog manages the tables of one database, in creation order
type Catalog struct {
	tables map[string]*table.Table
	order  []string
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{tables: make(map[string]*table.Table)}
}

// Add registers t under its name
func (c *Catalog) Add(t *table.Table) error {
	if _, exists := c.tables[t.Name()]; exists {
		return dberr.TableExists(t.Name())
	}
	c.tables[t.Name()] = t
	c.order = append(c.order, t.Name())
	return nil
}

// GetTable retrieves a table
func (c *Catalog) GetTable(tableName string) (*table.Table, error) {
	t, exists := c.tables[tableName]
	if !exists {
		return nil, dberr.TableNotFound(tableName)
	}
	return t, nil
}

// TableExists checks if a table exists
func (c *Catalog) TableExists(tableName string) bool {
	_, exists := c.tables[tableName]
	return exists
}

// Names returns table names in creation order
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Tables returns tables in creation order
func (c *Catalog) Tables() []*table.Table {
	out := make([]*table.Table, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.tables[name])
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.order)
}

// Reset drops every table
func (c *Catalog) Reset() {
	c.tables = make(map[string]*table.Table)
	c.order = nil
}
