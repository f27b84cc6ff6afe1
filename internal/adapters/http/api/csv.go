package api

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fairpay/fairpay/internal/domain/shift"
)

// RequiredColumns must all appear in an uploaded CSV header.
var RequiredColumns = []string{
	shift.FieldEarnings,
	shift.FieldHoursOnline,
	shift.FieldBonusesExpected,
	shift.FieldBonusesReceived,
	shift.FieldDeductions,
	shift.FieldTasksCompleted,
}

// ReadShiftsCSV parses a header row followed by one shift per line. Extra
// columns are ignored; unparsable cells read as 0.
func ReadShiftsCSV(r io.Reader) ([]shift.Shift, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", ErrProcessFile)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessFile, err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	var out []shift.Shift
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrProcessFile, err)
		}
		raw := make(shift.RawShift, len(RequiredColumns))
		for _, col := range RequiredColumns {
			if i := index[col]; i < len(rec) {
				raw[col] = rec[i]
			}
		}
		out = append(out, shift.FromRaw(raw))
	}
	return out, nil
}
