package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datapulse/pkg/contracts/domain"
)

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "integer", raw: "100", want: 100},
		{name: "decimal", raw: "117.857", want: 117.857},
		{name: "leading zero", raw: "075", want: 75},
		{name: "negative", raw: "-3.5", want: -3.5},
		{name: "explicit plus", raw: "+2", want: 2},
		{name: "bare fraction", raw: ".5", want: 0.5},
		{name: "surrounding whitespace", raw: " 300 ", want: 300},
		{name: "empty", raw: "", want: 0},
		{name: "blank", raw: "   ", want: 0},
		{name: "text", raw: "abc", want: 0},
		{name: "trailing dot", raw: "100.", want: 0},
		{name: "exponent rejected", raw: "1e3", want: 0},
		{name: "thousands separator rejected", raw: "1,000", want: 0},
		{name: "locale decimal mark rejected", raw: "3,14", want: 0},
		{name: "hex rejected", raw: "0x10", want: 0},
		{name: "inf rejected", raw: "Inf", want: 0},
		{name: "nan rejected", raw: "NaN", want: 0},
		{name: "embedded text", raw: "12abc", want: 0},
		{name: "double sign", raw: "--5", want: 0},
		{name: "sign only", raw: "-", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceValue(tt.raw))
		})
	}
}

func TestNormalize(t *testing.T) {
	ds := &domain.Dataset{
		Source:  "data.csv",
		Columns: []string{"ID", "Category", "Value", "Timestamp"},
		Records: []domain.Record{
			{ID: "1", Category: "A", RawValue: "100"},
			{ID: "2", Category: "B", RawValue: "abc"},
			{ID: "3", Category: "C", RawValue: ""},
			{ID: "4", Category: "A", RawValue: "-12.5"},
		},
	}

	got := Normalize(ds)
	require.Same(t, ds, got)

	values := make([]float64, 0, len(ds.Records))
	for _, rec := range ds.Records {
		values = append(values, rec.Value)
	}
	assert.Equal(t, []float64{100, 0, 0, -12.5}, values)

	// raw cells stay available after normalization
	assert.Equal(t, "abc", ds.Records[1].RawValue)
}

func TestNormalize_Empty(t *testing.T) {
	ds := &domain.Dataset{Source: "data.csv"}
	assert.NotPanics(t, func() { Normalize(ds) })
	assert.Empty(t, ds.Records)
}
