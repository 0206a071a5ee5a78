package store

import "encoding/json"

// Column is one field of a query result, stored as a parallel array of
// scalar values (string or number), one entry per logical row.
type Column struct {
	Name   string `json:"name"`
	Values []any  `json:"values"`
}

// Table is a columnar query result: an ordered list of parallel columns.
// Every column carries the same number of values (the table's row count).
type Table []Column

type QueryRequest struct {
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Queries   []string `json:"queries"`
}

// QueryResponse is the analytics endpoint payload: one table per submitted
// query, in submission order. Messages and HasStructuredData are passed
// through untouched.
type QueryResponse struct {
	Data              []Table           `json:"data"`
	Messages          []json.RawMessage `json:"messages"`
	HasStructuredData bool              `json:"hasStructuredData"`
	Queries           []string          `json:"queries,omitempty"`
}
