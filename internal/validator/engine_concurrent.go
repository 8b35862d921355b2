package validator

import (
	"bufio"
	"sort"
	"strings"
	"sync"

	"github.com/tmaulidane/txn-validation-service/internal/domain"
	"github.com/tmaulidane/txn-validation-service/pkg/fileutil"
)

// numberedLine pairs a non-blank data line with its 1-based position in the
// original file.
type numberedLine struct {
	rowNumber int
	text      string
}

// ValidateConcurrently runs the field-validation stage over row batches in a
// worker pool, good for CSV files with huge row counts. Duplicate detection
// and row attribution depend on strict file order, so worker output is
// re-serialized by row number before the stateful stage runs; results are
// identical to Validate for the same input.
func (e *Engine) ValidateConcurrently(input Input) (domain.ValidationResult, error) {
	scanner, rows, err := e.awaitHeader(input)
	if err != nil {
		return domain.ValidationResult{}, err
	}

	jobs := make(chan []numberedLine, e.policy.NumWorkers)
	results := make(chan []rowDraft, e.policy.NumWorkers)

	// Start the worker pool. Field validation is pure, so workers share the
	// RowValidator read-only and never touch the duplicate tracker.
	var wg sync.WaitGroup
	delim := e.policy.DelimiterRune()
	for i := 0; i < e.policy.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for batch := range jobs {
				drafts := make([]rowDraft, 0, len(batch))
				for _, line := range batch {
					drafts = append(drafts, rows.checkFields(line.rowNumber, fileutil.Tokenize(line.text, delim)))
				}
				results <- drafts
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	readErr := make(chan error, 1)
	go func() {
		defer close(jobs)
		readErr <- distributeLines(scanner, jobs, e.policy.BatchSize)
	}()

	var drafts []rowDraft
	for batch := range results {
		drafts = append(drafts, batch...)
	}

	if err := <-readErr; err != nil {
		return domain.ValidationResult{}, domain.WrapInvalidFileError("Error reading CSV file", err)
	}

	// Re-serialize into original file order before duplicate checks.
	sort.Slice(drafts, func(i, j int) bool { return drafts[i].rowNumber < drafts[j].rowNumber })

	var (
		valid     []domain.Transaction
		rowErrors []domain.ValidationError
		seen      = make(map[string]bool)
	)
	for _, draft := range drafts {
		outcome := rows.resolve(draft, seen)
		if outcome.Accepted() {
			valid = append(valid, *outcome.Transaction)
		} else {
			rowErrors = append(rowErrors, domain.NewValidationError(outcome.RowNumber, outcome.Failures))
		}
	}

	return e.finish(valid, rowErrors)
}

// distributeLines reads data lines and hands them to the workers in
// batches, skipping blank lines while keeping row numbers file-accurate.
func distributeLines(scanner *bufio.Scanner, jobs chan<- []numberedLine, batchSize int) error {
	batch := make([]numberedLine, 0, batchSize)
	rowNumber := 1 // the header line was row 1

	for scanner.Scan() {
		rowNumber++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		batch = append(batch, numberedLine{rowNumber: rowNumber, text: text})
		if len(batch) >= batchSize {
			jobs <- batch
			batch = make([]numberedLine, 0, batchSize)
		}
	}

	if len(batch) > 0 {
		jobs <- batch
	}

	return scanner.Err()
}
