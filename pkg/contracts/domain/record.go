package domain

import "strings"

// Record represents a single data row from the input table.
// RawValue holds the cell text exactly as read; Value is only meaningful
// after normalization has run over the dataset.
type Record struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	RawValue  string  `json:"raw_value"`
	Value     float64 `json:"value"`
	Timestamp string  `json:"timestamp"` // opaque, never parsed
}

// Dataset is an ordered collection of records together with the header
// schema they were loaded from. Row order follows file order.
type Dataset struct {
	Source  string   // base name of the file the dataset was loaded from
	Columns []string // header row, trimmed
	Records []Record
}

// HasColumn reports whether the header contains the named column.
// Header matching is trimmed and case-insensitive; cell values are not
// affected by this.
func (d *Dataset) HasColumn(name string) bool {
	for _, col := range d.Columns {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return true
		}
	}
	return false
}
