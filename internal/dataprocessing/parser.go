package dataprocessing

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"datapulse/internal/errors"
	"datapulse/pkg/contracts/domain"
)

// Column names of the expected schema. Only the value column is required
// for full aggregation; the others degrade to empty fields when absent.
const (
	IDColumn        = "ID"
	CategoryColumn  = "Category"
	ValueColumn     = "Value"
	TimestampColumn = "Timestamp"
)

// ParseFile reads a dataset file into a Dataset. CSV is the default format;
// files with an .xlsx extension are read as workbooks (first sheet, first row
// as header). The header row is required in both formats.
func ParseFile(path string) (*domain.Dataset, error) {
	var (
		rows [][]string
		err  error
	)

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, err = readWorkbook(path)
	} else {
		rows, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errors.NewParsingError("missing header row", nil).
			WithContext("path", path)
	}

	header := make([]string, len(rows[0]))
	for i, col := range rows[0] {
		header[i] = strings.TrimSpace(col)
	}

	// Map column positions by trimmed, case-insensitive header name.
	columnMap := make(map[string]int, len(header))
	for i, col := range header {
		columnMap[strings.ToLower(col)] = i
	}

	ds := &domain.Dataset{
		Source:  filepath.Base(path),
		Columns: header,
		Records: make([]domain.Record, 0, len(rows)-1),
	}

	for _, row := range rows[1:] {
		ds.Records = append(ds.Records, domain.Record{
			ID:        cell(row, columnMap, IDColumn),
			Category:  cell(row, columnMap, CategoryColumn),
			RawValue:  cell(row, columnMap, ValueColumn),
			Timestamp: cell(row, columnMap, TimestampColumn),
		})
	}

	return ds, nil
}

// cell returns the raw text of the named column in a row, or "" when the
// column is unmapped or the row is too short.
func cell(row []string, columnMap map[string]int, name string) string {
	idx, ok := columnMap[strings.ToLower(name)]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError(path, err)
		}
		return nil, errors.NewParsingError("failed to open dataset file", err).
			WithContext("path", path)
	}
	defer f.Close()

	// The reader's field-count check rejects structurally malformed tables.
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.NewParsingError("failed to parse dataset as CSV", err).
			WithContext("path", path)
	}
	return rows, nil
}

func readWorkbook(path string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError(path, err)
		}
		return nil, errors.NewParsingError("failed to stat workbook", err).
			WithContext("path", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewParsingError("failed to open workbook", err).
			WithContext("path", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewParsingError("workbook has no sheets", nil).
			WithContext("path", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.NewParsingError("failed to read workbook rows", err).
			WithContext("path", path).
			WithContext("sheet", sheets[0])
	}
	return rows, nil
}
