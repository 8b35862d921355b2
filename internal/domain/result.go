package domain

import "strings"

// ValidationError describes every problem found on a single data row.
// RowNumber is 1-based and counts the header line as row 1, so data rows
// start at 2. Message joins all field-level failures for the row.
type ValidationError struct {
	RowNumber int
	Message   string
}

// NewValidationError joins the per-field failure messages for one row.
func NewValidationError(rowNumber int, failures []string) ValidationError {
	return ValidationError{
		RowNumber: rowNumber,
		Message:   strings.Join(failures, "; "),
	}
}

// RowOutcome is the result of validating a single data row: either an
// accepted Transaction or the list of failures that rejected it.
type RowOutcome struct {
	RowNumber   int
	Transaction *Transaction
	Failures    []string
}

// Accepted reports whether the row produced a valid Transaction.
func (o RowOutcome) Accepted() bool {
	return len(o.Failures) == 0
}

// ValidationResult is the terminal output of a validation run. Both slices
// preserve file order. The result is never produced for file-level failures;
// those surface as an InvalidFileError instead.
type ValidationResult struct {
	ValidTransactions []Transaction
	Errors            []ValidationError
	TotalRows         int // data rows processed, blank lines excluded
	ValidRows         int
	InvalidRows       int
}

// HasErrors reports whether any row was rejected.
func (r ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}
