package dataprocessing

import (
	"regexp"
	"strconv"
	"strings"

	"datapulse/pkg/contracts/domain"
)

// FallbackValue replaces every cell that fails numeric coercion.
const FallbackValue = 0.0

// numericRe is the accepted value grammar: optionally signed base-10
// integers and decimals. No exponents, thousands separators, or locale
// decimal marks.
var numericRe = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)$`)

// CoerceValue maps raw cell text to a numeric value. The function is total:
// any input that does not match the numeric grammar, including the empty
// string, yields FallbackValue. Missing and malformed cells are not
// distinguished.
func CoerceValue(raw string) float64 {
	s := strings.TrimSpace(raw)
	if !numericRe.MatchString(s) {
		return FallbackValue
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return FallbackValue
	}
	return v
}

// Normalize coerces the value cell of every record in place, so the
// aggregation stage can assume a fully numeric column. It never fails.
func Normalize(ds *domain.Dataset) *domain.Dataset {
	for i := range ds.Records {
		ds.Records[i].Value = CoerceValue(ds.Records[i].RawValue)
	}
	return ds
}
