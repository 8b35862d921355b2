package validator_test

import (
	"strings"
	"testing"

	"github.com/tmaulidane/txn-validation-service/internal/validator"
)

func TestResolveHeadersByName(t *testing.T) {
	mapping, err := validator.ResolveHeaders([]string{"Date", "TransactionID", "Amount", "Currency"}, false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := map[string]int{"Date": 0, "TransactionID": 1, "Amount": 2, "Currency": 3}
	for name, idx := range want {
		if mapping[name] != idx {
			t.Errorf("Expected %s at index %d, got %d", name, idx, mapping[name])
		}
	}
}

func TestResolveHeadersCaseInsensitive(t *testing.T) {
	mapping, err := validator.ResolveHeaders([]string{"date", "TRANSACTIONID", "amount", "currency"}, false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mapping[validator.HeaderAmount] != 2 {
		t.Errorf("Expected Amount at index 2, got %d", mapping[validator.HeaderAmount])
	}
}

func TestResolveHeadersReorderedWithExtras(t *testing.T) {
	tokens := []string{"Notes", "Currency", "Amount", "TransactionID", "Date"}
	mapping, err := validator.ResolveHeaders(tokens, false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mapping[validator.HeaderCurrency] != 1 || mapping[validator.HeaderDate] != 4 {
		t.Errorf("Expected Currency=1 and Date=4, got Currency=%d Date=%d",
			mapping[validator.HeaderCurrency], mapping[validator.HeaderDate])
	}
}

func TestResolveHeadersDuplicateFirstOccurrenceWins(t *testing.T) {
	tokens := []string{"Date", "Amount", "Date", "TransactionID", "Amount", "Currency"}
	mapping, err := validator.ResolveHeaders(tokens, false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mapping[validator.HeaderDate] != 0 {
		t.Errorf("Expected first Date occurrence (index 0), got %d", mapping[validator.HeaderDate])
	}
	if mapping[validator.HeaderAmount] != 1 {
		t.Errorf("Expected first Amount occurrence (index 1), got %d", mapping[validator.HeaderAmount])
	}
}

func TestResolveHeadersMissing(t *testing.T) {
	_, err := validator.ResolveHeaders([]string{"Date", "Amount"}, false)
	if err == nil {
		t.Fatal("Expected an error for missing headers")
	}
	if !strings.Contains(err.Error(), "Missing required headers") {
		t.Errorf("Expected missing-headers message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "TransactionID") || !strings.Contains(err.Error(), "Currency") {
		t.Errorf("Expected message to list the missing names, got %q", err.Error())
	}
}

func TestResolveHeadersStrictOrder(t *testing.T) {
	// Exact match passes, case-insensitively.
	if _, err := validator.ResolveHeaders([]string{"date", "transactionid", "amount", "currency"}, true); err != nil {
		t.Errorf("Unexpected error for exact header match: %v", err)
	}

	// Reordered columns fail in strict mode.
	if _, err := validator.ResolveHeaders([]string{"TransactionID", "Date", "Amount", "Currency"}, true); err == nil {
		t.Error("Expected an error for reordered headers in strict mode")
	}

	// Extra columns fail in strict mode.
	if _, err := validator.ResolveHeaders([]string{"Date", "TransactionID", "Amount", "Currency", "Notes"}, true); err == nil {
		t.Error("Expected an error for extra headers in strict mode")
	}
}
