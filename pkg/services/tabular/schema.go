package tabular

import (
	"fmt"

	"github.com/de-tools/sales-pulse/pkg/models/store"
)

// Schema describes the column set a dataset is expected to carry, in the
// order the query selects them. It is the only place where a table's shape
// is checked; row binding assumes a validated table.
type Schema struct {
	Name    string
	Columns []string
}

// Validate checks that every expected column is present and that all
// columns in the table agree on length. The first column's length is taken
// as the table's row count; any column that disagrees makes the table
// malformed rather than silently truncated.
func (s Schema) Validate(t store.Table) error {
	byName := make(map[string]store.Column, len(t))
	for _, c := range t {
		byName[c.Name] = c
	}

	for _, name := range s.Columns {
		if _, ok := byName[name]; !ok {
			return fmt.Errorf("dataset %q: missing column %q", s.Name, name)
		}
	}

	if len(t) == 0 {
		return nil
	}

	rows := len(t[0].Values)
	for _, c := range t[1:] {
		if len(c.Values) != rows {
			return fmt.Errorf("dataset %q: column %q has %d values, expected %d",
				s.Name, c.Name, len(c.Values), rows)
		}
	}
	return nil
}
