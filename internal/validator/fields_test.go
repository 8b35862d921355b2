package validator_test

import (
	"strings"
	"testing"
	"time"

	"github.com/tmaulidane/txn-validation-service/internal/config"
	"github.com/tmaulidane/txn-validation-service/internal/validator"
)

func TestValidateDate(t *testing.T) {
	isoOnly := []string{"2006-01-02"}

	date, err := validator.ValidateDate("2024-01-15", isoOnly)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !date.Equal(want) {
		t.Errorf("Expected %v, got %v", want, date)
	}

	if _, err := validator.ValidateDate("", isoOnly); err == nil || !strings.Contains(err.Error(), "required") {
		t.Errorf("Expected a required failure for empty date, got %v", err)
	}

	_, err = validator.ValidateDate("15-Jan-2024", isoOnly)
	if err == nil || !strings.Contains(err.Error(), "Invalid date format") {
		t.Errorf("Expected an invalid-format failure, got %v", err)
	}
	if !strings.Contains(err.Error(), "YYYY-MM-DD") {
		t.Errorf("Expected the message to name the accepted format, got %q", err.Error())
	}
}

func TestValidateDateLenientFormats(t *testing.T) {
	layouts := config.Lenient().DateFormats

	// Day-first layout comes before month-first, so the first match wins.
	date, err := validator.ValidateDate("15/01/2024", layouts)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if date.Day() != 15 || date.Month() != time.January {
		t.Errorf("Expected 15 January, got %v", date)
	}

	if _, err := validator.ValidateDate("2024-01-15", layouts); err != nil {
		t.Errorf("ISO must always be accepted, got error: %v", err)
	}
}

func TestValidateTransactionIDStrict(t *testing.T) {
	rule := config.Default().TransactionID

	id, err := validator.ValidateTransactionID("TXN1234567", rule)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if id != "TXN1234567" {
		t.Errorf("Expected TXN1234567, got %s", id)
	}

	if _, err := validator.ValidateTransactionID("", rule); err == nil || !strings.Contains(err.Error(), "required") {
		t.Errorf("Expected a required failure for empty id, got %v", err)
	}

	if _, err := validator.ValidateTransactionID("TXN123", rule); err == nil || !strings.Contains(err.Error(), "exactly 10") {
		t.Errorf("Expected an exact-length failure for short id, got %v", err)
	}

	if _, err := validator.ValidateTransactionID("TXN12345678", rule); err == nil {
		t.Error("Expected an exact-length failure for long id")
	}
}

func TestValidateTransactionIDLenient(t *testing.T) {
	rule := config.Lenient().TransactionID

	if _, err := validator.ValidateTransactionID("TXN_2024-000001", rule); err != nil {
		t.Errorf("Unexpected error for valid lenient id: %v", err)
	}

	if _, err := validator.ValidateTransactionID(strings.Repeat("A", 101), rule); err == nil || !strings.Contains(err.Error(), "at most 100") {
		t.Errorf("Expected a max-length failure, got %v", err)
	}

	if _, err := validator.ValidateTransactionID("TXN 123", rule); err == nil || !strings.Contains(err.Error(), "letters, digits") {
		t.Errorf("Expected a charset failure for embedded space, got %v", err)
	}
}

func TestValidateAmount(t *testing.T) {
	amount, err := validator.ValidateAmount("100.50")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if amount.StringFixed(2) != "100.50" {
		t.Errorf("Expected 100.50, got %s", amount.StringFixed(2))
	}

	// Whole amounts and one decimal place are fine.
	for _, raw := range []string{"1", "250", "99.9", "0.01"} {
		if _, err := validator.ValidateAmount(raw); err != nil {
			t.Errorf("Unexpected error for %q: %v", raw, err)
		}
	}
}

func TestValidateAmountFailures(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", "required"},
		{"abc", "Invalid amount format"},
		{"12.34.56", "Invalid amount format"},
		{"+5", "Invalid amount format"},
		{"1e3", "Invalid amount format"},
		{"0", "must be positive"},
		{"0.00", "must be positive"},
		{"-100.50", "must be positive"},
		{"-1.234", "must be positive"},
		{"100.505", "too many decimal places"},
		{"1.230", "too many decimal places"},
		{"0.001", "too many decimal places"},
	}

	for _, tt := range tests {
		_, err := validator.ValidateAmount(tt.raw)
		if err == nil {
			t.Errorf("Expected an error for amount %q", tt.raw)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("Amount %q: expected failure containing %q, got %q", tt.raw, tt.want, err.Error())
		}
	}
}

func TestValidateCurrency(t *testing.T) {
	allowed := validator.NewCurrencySet([]string{"USD", "EUR", "INR"})

	code, err := validator.ValidateCurrency("USD", allowed, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if code != "USD" {
		t.Errorf("Expected USD, got %s", code)
	}

	// Case-insensitive policy normalizes to uppercase.
	code, err = validator.ValidateCurrency("usd", allowed, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if code != "USD" {
		t.Errorf("Expected normalized USD, got %s", code)
	}

	// Case-sensitive policy rejects lowercase outright.
	if _, err := validator.ValidateCurrency("usd", allowed, false); err == nil {
		t.Error("Expected an error for lowercase currency under case-sensitive policy")
	}

	if _, err := validator.ValidateCurrency("", allowed, true); err == nil || !strings.Contains(err.Error(), "required") {
		t.Errorf("Expected a required failure for empty currency, got %v", err)
	}

	_, err = validator.ValidateCurrency("GBP", allowed, true)
	if err == nil || !strings.Contains(err.Error(), "Invalid currency") {
		t.Errorf("Expected an invalid-currency failure, got %v", err)
	}
	if !strings.Contains(err.Error(), "USD, EUR, INR") {
		t.Errorf("Expected the message to name the allowed set, got %q", err.Error())
	}
}
