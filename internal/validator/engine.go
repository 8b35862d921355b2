package validator

import (
	"bufio"
	"io"
	"log"
	"os"
	"strings"

	"github.com/tmaulidane/txn-validation-service/internal/config"
	"github.com/tmaulidane/txn-validation-service/internal/domain"
	"github.com/tmaulidane/txn-validation-service/pkg/fileutil"
)

// Scanner sizing for long CSV lines.
const (
	initialLineBuffer = 64 * 1024
	maxLineBuffer     = 1024 * 1024
)

// Input describes one uploaded file: the raw byte stream plus whatever
// metadata the upload layer knows about it. ContentType may be left empty.
type Input struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// Engine drives a full validation run: file basics and header resolution
// once, then row validation per line. Every call constructs fresh
// accumulators and a fresh duplicate tracker, so one Engine may serve
// independent concurrent calls.
type Engine struct {
	policy config.Policy
	logger *log.Logger
}

// NewEngine creates an Engine for the given policy. A nil logger defaults
// to stderr; the engine only logs warnings, never row errors.
func NewEngine(policy config.Policy, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	return &Engine{policy: policy, logger: logger}
}

// Validate runs the serial validation pass over the input.
//
// File-level problems (missing file, wrong extension, unreadable or invalid
// header, zero data rows, I/O failures) return a *domain.InvalidFileError
// and no result. Row-level problems never abort the run; they are collected
// into the result's Errors alongside the valid transactions.
func (e *Engine) Validate(input Input) (domain.ValidationResult, error) {
	scanner, rows, err := e.awaitHeader(input)
	if err != nil {
		return domain.ValidationResult{}, err
	}

	var (
		valid     []domain.Transaction
		rowErrors []domain.ValidationError
		seen      = make(map[string]bool)
		delim     = e.policy.DelimiterRune()
		rowNumber = 1 // the header line is row 1
	)

	for scanner.Scan() {
		rowNumber++
		line := scanner.Text()

		// Blank lines are skipped, not counted and not an error; the row
		// counter still advances so later attributions stay accurate.
		if strings.TrimSpace(line) == "" {
			continue
		}

		outcome := rows.Validate(rowNumber, fileutil.Tokenize(line, delim), seen)
		if outcome.Accepted() {
			valid = append(valid, *outcome.Transaction)
		} else {
			rowErrors = append(rowErrors, domain.NewValidationError(outcome.RowNumber, outcome.Failures))
		}
	}

	if err := scanner.Err(); err != nil {
		return domain.ValidationResult{}, domain.WrapInvalidFileError("Error reading CSV file", err)
	}

	return e.finish(valid, rowErrors)
}

// awaitHeader performs the pre-row phase: file basics, then reading and
// resolving the header line. Every failure in this phase is fatal.
func (e *Engine) awaitHeader(input Input) (*bufio.Scanner, *RowValidator, error) {
	if input.Reader == nil {
		return nil, nil, domain.NewInvalidFileError("File is empty or not provided")
	}

	if !fileutil.HasCSVExtension(input.Filename) {
		return nil, nil, domain.NewInvalidFileError("File must be a CSV file with .csv extension")
	}

	// Browsers declare inconsistent content types for CSV uploads, so an
	// unexpected one is only worth a warning.
	if !fileutil.AcceptableContentType(input.ContentType) {
		e.logger.Printf("Warning: unexpected content type %q for %s", input.ContentType, input.Filename)
	}

	scanner := bufio.NewScanner(input.Reader)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineBuffer)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, nil, domain.WrapInvalidFileError("Error reading CSV file", err)
		}
		return nil, nil, domain.NewInvalidFileError("CSV file is empty or missing headers")
	}

	headerLine := scanner.Text()
	if strings.TrimSpace(headerLine) == "" {
		return nil, nil, domain.NewInvalidFileError("CSV file is empty or missing headers")
	}

	mapping, err := ResolveHeaders(fileutil.Tokenize(headerLine, e.policy.DelimiterRune()), e.policy.StrictHeaderOrder)
	if err != nil {
		return nil, nil, err
	}

	return scanner, NewRowValidator(e.policy, mapping), nil
}

// finish closes the run. A header followed by no data rows at all is a
// file-level error, not an empty success.
func (e *Engine) finish(valid []domain.Transaction, rowErrors []domain.ValidationError) (domain.ValidationResult, error) {
	if len(valid) == 0 && len(rowErrors) == 0 {
		return domain.ValidationResult{}, domain.NewInvalidFileError("CSV file contains no data rows")
	}

	return domain.ValidationResult{
		ValidTransactions: valid,
		Errors:            rowErrors,
		TotalRows:         len(valid) + len(rowErrors),
		ValidRows:         len(valid),
		InvalidRows:       len(rowErrors),
	}, nil
}
