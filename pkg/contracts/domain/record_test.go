package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataset_HasColumn(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		lookup  string
		want    bool
	}{
		{
			name:    "exact match",
			columns: []string{"ID", "Category", "Value", "Timestamp"},
			lookup:  "Value",
			want:    true,
		},
		{
			name:    "case-insensitive match",
			columns: []string{"id", "category", "value", "timestamp"},
			lookup:  "Value",
			want:    true,
		},
		{
			name:    "untrimmed header",
			columns: []string{"ID", " Value "},
			lookup:  "Value",
			want:    true,
		},
		{
			name:    "absent column",
			columns: []string{"ID", "Category", "Timestamp"},
			lookup:  "Value",
			want:    false,
		},
		{
			name:    "empty header",
			columns: nil,
			lookup:  "Value",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := &Dataset{Columns: tt.columns}
			assert.Equal(t, tt.want, ds.HasColumn(tt.lookup))
		})
	}
}
