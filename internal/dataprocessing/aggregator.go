package dataprocessing

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"datapulse/internal/errors"
	"datapulse/pkg/contracts/domain"
)

// Aggregator computes the summary statistics for a normalized dataset and
// writes them as the JSON result consumed by the display page.
type Aggregator struct {
	logger *slog.Logger
}

// NewAggregator creates a new aggregator.
func NewAggregator(logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{logger: logger}
}

// Summary is the success result. Field names are an exact contract with
// downstream consumers of the output file.
type Summary struct {
	TotalSumOfValues float64 `json:"total_sum_of_values"`
	AverageValue     float64 `json:"average_value"`
	RecordCount      int     `json:"record_count"`
	Categories       int     `json:"categories"`
}

// ColumnFault is the degenerate result produced when the value column is
// absent from the table schema entirely. It is still a successful run.
type ColumnFault struct {
	Error       string `json:"error"`
	RecordCount int    `json:"record_count"`
}

// Result holds exactly one of Summary or ColumnFault and marshals as the
// shape it holds.
type Result struct {
	Summary *Summary
	Fault   *ColumnFault
}

// OK reports whether the result carries a full summary.
func (r *Result) OK() bool {
	return r.Fault == nil
}

// MarshalJSON implements json.Marshaler.
func (r *Result) MarshalJSON() ([]byte, error) {
	if r.Fault != nil {
		return json.Marshal(r.Fault)
	}
	return json.Marshal(r.Summary)
}

// Aggregate computes the aggregate result for a normalized dataset. It never
// fails: dirty cells were already absorbed by normalization, and a missing
// value column becomes a structured fault rather than an error.
func (a *Aggregator) Aggregate(ctx context.Context, ds *domain.Dataset) *Result {
	if !ds.HasColumn(ValueColumn) {
		msg := fmt.Sprintf("Column %q not found in %s", ValueColumn, ds.Source)
		a.logger.WarnContext(ctx, "value column absent from schema",
			slog.String("source", ds.Source),
			slog.Int("record_count", len(ds.Records)))
		return &Result{Fault: &ColumnFault{Error: msg, RecordCount: len(ds.Records)}}
	}

	var sum float64
	categories := make(map[string]struct{})
	for _, rec := range ds.Records {
		sum += rec.Value
		// distinct labels are case-sensitive exact strings
		categories[rec.Category] = struct{}{}
	}

	summary := &Summary{
		TotalSumOfValues: sum,
		RecordCount:      len(ds.Records),
		Categories:       len(categories),
	}
	// mean of an empty dataset is defined as 0
	if summary.RecordCount > 0 {
		summary.AverageValue = sum / float64(summary.RecordCount)
	}

	a.logger.InfoContext(ctx, "aggregated dataset",
		slog.String("source", ds.Source),
		slog.Int("record_count", summary.RecordCount),
		slog.Int("categories", summary.Categories),
		slog.Float64("total_sum_of_values", summary.TotalSumOfValues))

	return &Result{Summary: summary}
}

// WriteJSON writes a result to the given path as indented JSON, creating
// parent directories as needed.
func (a *Aggregator) WriteJSON(ctx context.Context, path string, result *Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for result output", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create result file", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(result); err != nil {
		return errors.NewStorageError("failed to encode result to JSON", err)
	}

	a.logger.InfoContext(ctx, "wrote aggregate result",
		slog.String("path", path),
		slog.Bool("ok", result.OK()))

	return nil
}
