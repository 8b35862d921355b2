package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one fully validated transaction row from an
// uploaded CSV file. Instances are only ever built from rows that passed
// every field validation; there is no partially constructed state.
type Transaction struct {
	Date          time.Time       // calendar date, no time component
	TransactionID string
	Amount        decimal.Decimal // positive, at most 2 decimal places
	Currency      string          // uppercase 3-letter code from the allow-list
}
