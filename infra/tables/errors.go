package tables

import "errors"

var (
	// ErrMissingColumn is returned when a table lacks a required header.
	ErrMissingColumn = errors.New("tables: missing column")
	// ErrEmptyTable is returned when a table has no header row.
	ErrEmptyTable = errors.New("tables: empty table")
)
