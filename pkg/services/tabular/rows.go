package tabular

import (
	"github.com/de-tools/sales-pulse/pkg/models/store"
	"github.com/spf13/cast"
)

// Row gives typed access to one logical row of a columnar table.
type Row struct {
	index   int
	columns map[string][]any
}

func (r Row) String(column string) string {
	values, ok := r.columns[column]
	if !ok || r.index >= len(values) {
		return ""
	}
	return cast.ToString(values[r.index])
}

func (r Row) Float(column string) float64 {
	values, ok := r.columns[column]
	if !ok || r.index >= len(values) {
		return 0
	}
	return cast.ToFloat64(values[r.index])
}

// RowCount returns the table's logical row count, taken from its first
// column. Validate reports columns that disagree with it.
func RowCount(t store.Table) int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0].Values)
}

// Rows reconstructs the table's logical rows in source order and binds each
// one to a typed record. An absent or zero-column table yields an empty
// slice. The table is expected to have passed Schema.Validate first.
func Rows[T any](t store.Table, bind func(Row) T) []T {
	count := RowCount(t)
	records := make([]T, 0, count)
	if count == 0 {
		return records
	}

	columns := make(map[string][]any, len(t))
	for _, c := range t {
		columns[c.Name] = c.Values
	}

	for i := 0; i < count; i++ {
		records = append(records, bind(Row{index: i, columns: columns}))
	}
	return records
}
