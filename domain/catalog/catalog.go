package catalog

import (
	"fmt"
	"strings"
)

// Catalog is an immutable column-oriented table of per-galaxy records.
// Only the numeric columns the analysis consumes are materialized; the
// full column-name listing of the source table is kept for inspection.
type Catalog struct {
	names   []string
	columns map[string][]float64
	rows    int
}

// New creates a catalog with the given source column names and row count
func New(names []string, rows int) *Catalog {
	return &Catalog{
		names:   append([]string(nil), names...),
		columns: make(map[string][]float64),
		rows:    rows,
	}
}

// AddColumn materializes a numeric column. The column name is matched
// case-insensitively on lookup.
func (c *Catalog) AddColumn(name string, values []float64) error {
	if len(values) != c.rows {
		return fmt.Errorf("column %s has %d values, catalog has %d rows", name, len(values), c.rows)
	}
	c.columns[strings.ToUpper(name)] = values
	return nil
}

// Column returns a materialized column by case-insensitive name
func (c *Catalog) Column(name string) ([]float64, bool) {
	values, ok := c.columns[strings.ToUpper(name)]
	return values, ok
}

// MustColumn returns a materialized column or panics; reserved for callers
// that have already verified the column exists
func (c *Catalog) MustColumn(name string) []float64 {
	values, ok := c.Column(name)
	if !ok {
		panic(fmt.Sprintf("catalog: column %s not materialized", name))
	}
	return values
}

// ColumnNames enumerates every column name of the source table in order
func (c *Catalog) ColumnNames() []string {
	return append([]string(nil), c.names...)
}

// Len returns the number of rows
func (c *Catalog) Len() int {
	return c.rows
}
