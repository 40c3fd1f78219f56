// Package dataprocessing turns one raw dataset file into a clean aggregate result.
//
// # Architecture
//
// The package is organized into three main components:
//
// 1. Parser: reads a delimited table (CSV, or an xlsx workbook) into a Dataset
// 2. Normalizer: coerces every Value cell to a float64, with 0 for dirty cells
// 3. Aggregator: computes sum, mean, record count and distinct category count
//
// # Usage
//
//	ds, err := dataprocessing.ParseFile("data/data.csv")
//	if err != nil {
//	    // missing file or unparseable table; nothing to aggregate
//	}
//	dataprocessing.Normalize(ds)
//
//	agg := dataprocessing.NewAggregator(logger)
//	result := agg.Aggregate(ctx, ds)
//	err = agg.WriteJSON(ctx, "data/summary.json", result)
//
// # Data Flow
//
//	Table File → Parser → Dataset → Normalizer → Dataset → Aggregator → Result
//
// # Error Handling
//
// Only file-level problems escape this package: ParseFile returns typed
// NOT_FOUND and PARSING errors and WriteJSON returns STORAGE errors.
// Cell-level data quality never fails the run; Normalize is total over all
// possible inputs, and a dataset whose Value column is absent from the header
// still aggregates to a structured fault result rather than an error.
package dataprocessing
