package validator

import (
	"fmt"

	"github.com/tmaulidane/txn-validation-service/internal/config"
	"github.com/tmaulidane/txn-validation-service/internal/domain"
)

// RowValidator validates one tokenized data row against the policy and the
// resolved header mapping. It carries no per-row state itself; the duplicate
// tracker is owned by the engine and passed in per call.
type RowValidator struct {
	policy     config.Policy
	headers    HeaderMapping
	currencies CurrencySet
}

// NewRowValidator creates a RowValidator for one validation run.
func NewRowValidator(policy config.Policy, headers HeaderMapping) *RowValidator {
	return &RowValidator{
		policy:     policy,
		headers:    headers,
		currencies: NewCurrencySet(policy.Currencies),
	}
}

// rowDraft is the outcome of the pure per-field stage, before the cross-row
// duplicate check. Splitting the stages lets the concurrent engine run field
// checks in parallel and apply duplicate tracking serially afterwards.
type rowDraft struct {
	rowNumber int
	txn       domain.Transaction
	failures  []string

	// id is tracked for duplicate detection only when it passed its own
	// syntactic validation, so a malformed id never poisons the tracker.
	id      string
	idValid bool
}

// Validate runs all field validators plus the duplicate check for one row.
// The tracker is mutated only when the row is accepted as fully valid.
func (v *RowValidator) Validate(rowNumber int, fields []string, seen map[string]bool) domain.RowOutcome {
	return v.resolve(v.checkFields(rowNumber, fields), seen)
}

// checkFields runs the stateless stage: column count, then all four field
// validators. Every validator runs even when earlier ones fail, so one row
// with three problems reports all three.
func (v *RowValidator) checkFields(rowNumber int, fields []string) rowDraft {
	draft := rowDraft{rowNumber: rowNumber}

	if len(fields) < len(RequiredHeaders) {
		draft.failures = append(draft.failures, fmt.Sprintf(
			"Insufficient number of columns. Expected %d, found %d",
			len(RequiredHeaders), len(fields)))
		return draft
	}

	date, err := ValidateDate(v.fieldValue(fields, HeaderDate), v.policy.DateFormats)
	if err != nil {
		draft.failures = append(draft.failures, err.Error())
	} else {
		draft.txn.Date = date
	}

	id, err := ValidateTransactionID(v.fieldValue(fields, HeaderTransactionID), v.policy.TransactionID)
	if err != nil {
		draft.failures = append(draft.failures, err.Error())
	} else {
		draft.txn.TransactionID = id
		draft.id = id
		draft.idValid = true
	}

	amount, err := ValidateAmount(v.fieldValue(fields, HeaderAmount))
	if err != nil {
		draft.failures = append(draft.failures, err.Error())
	} else {
		draft.txn.Amount = amount
	}

	currency, err := ValidateCurrency(v.fieldValue(fields, HeaderCurrency), v.currencies, v.policy.CaseInsensitiveCurrency)
	if err != nil {
		draft.failures = append(draft.failures, err.Error())
	} else {
		draft.txn.Currency = currency
	}

	return draft
}

// resolve runs the stateful stage: the duplicate check and, on full accept,
// the tracker insert. The duplicate failure is always listed last.
func (v *RowValidator) resolve(draft rowDraft, seen map[string]bool) domain.RowOutcome {
	if draft.idValid && seen[draft.id] {
		draft.failures = append(draft.failures, fmt.Sprintf("Duplicate TransactionID '%s'", draft.id))
	}

	if len(draft.failures) > 0 {
		return domain.RowOutcome{RowNumber: draft.rowNumber, Failures: draft.failures}
	}

	seen[draft.id] = true
	txn := draft.txn
	return domain.RowOutcome{RowNumber: draft.rowNumber, Transaction: &txn}
}

// fieldValue looks a required column up in the row. A column the mapping
// points past the row's end reads as empty, which the field validators then
// report as "required".
func (v *RowValidator) fieldValue(fields []string, name string) string {
	idx, ok := v.headers[name]
	if !ok || idx >= len(fields) {
		return ""
	}
	return fields[idx]
}
