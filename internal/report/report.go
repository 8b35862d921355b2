package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/tmaulidane/txn-validation-service/internal/domain"
)

// Status is the tri-state outcome a caller reports upstream. The engine
// never computes it; it is derived here from the two result lists.
type Status string

const (
	StatusCompleted           Status = "COMPLETED"
	StatusCompletedWithErrors Status = "COMPLETED_WITH_ERRORS"
	StatusRejected            Status = "REJECTED"
)

// TransactionRecord is the wire form of one valid transaction.
type TransactionRecord struct {
	Date          string `json:"date"`
	TransactionID string `json:"transactionId"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
}

// RowError is the wire form of one rejected row.
type RowError struct {
	RowNumber int    `json:"rowNumber"`
	Message   string `json:"message"`
}

// Report wraps a ValidationResult with the run metadata callers expect: a
// job id, the source filename, the derived status and a timestamp.
type Report struct {
	JobID        string              `json:"jobId"`
	Filename     string              `json:"filename"`
	Status       Status              `json:"status"`
	GeneratedAt  time.Time           `json:"generatedAt"`
	TotalRows    int                 `json:"totalRows"`
	ValidRows    int                 `json:"validRows"`
	InvalidRows  int                 `json:"invalidRows"`
	Transactions []TransactionRecord `json:"transactions"`
	Errors       []RowError          `json:"errors"`
}

// New builds a Report for one finished validation run.
func New(filename string, result domain.ValidationResult) Report {
	records := make([]TransactionRecord, 0, len(result.ValidTransactions))
	for _, txn := range result.ValidTransactions {
		records = append(records, TransactionRecord{
			Date:          txn.Date.Format("2006-01-02"),
			TransactionID: txn.TransactionID,
			Amount:        txn.Amount.StringFixed(2),
			Currency:      txn.Currency,
		})
	}

	rowErrors := make([]RowError, 0, len(result.Errors))
	for _, e := range result.Errors {
		rowErrors = append(rowErrors, RowError{RowNumber: e.RowNumber, Message: e.Message})
	}

	return Report{
		JobID:        "JOB-" + uuid.NewString(),
		Filename:     filename,
		Status:       DeriveStatus(result),
		GeneratedAt:  time.Now().UTC(),
		TotalRows:    result.TotalRows,
		ValidRows:    result.ValidRows,
		InvalidRows:  result.InvalidRows,
		Transactions: records,
		Errors:       rowErrors,
	}
}

// DeriveStatus maps the two result lists onto the tri-state label
// {all valid, some valid, none valid}.
func DeriveStatus(result domain.ValidationResult) Status {
	switch {
	case len(result.ValidTransactions) == 0:
		return StatusRejected
	case len(result.Errors) > 0:
		return StatusCompletedWithErrors
	default:
		return StatusCompleted
	}
}
