package api

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest     = errors.New("bad request")
	ErrNoShifts       = errors.New("No shifts provided")
	ErrTooManyShifts  = errors.New("too many shifts")
	ErrMissingColumns = errors.New("Missing required columns")
	ErrProcessFile    = errors.New("Failed to process file")
)

// MissingColumnsError names the CSV header columns that were not found.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingColumns.Error(), strings.Join(e.Columns, ", "))
}

func (e *MissingColumnsError) Unwrap() error {
	return ErrMissingColumns
}
