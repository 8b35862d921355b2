package validator

import (
	"fmt"
	"strings"

	"github.com/tmaulidane/txn-validation-service/internal/domain"
)

// Canonical column names required by the input contract. Matching against
// the file's header line is case-insensitive.
const (
	HeaderDate          = "Date"
	HeaderTransactionID = "TransactionID"
	HeaderAmount        = "Amount"
	HeaderCurrency      = "Currency"
)

// RequiredHeaders lists the required column names in their canonical order.
var RequiredHeaders = []string{HeaderDate, HeaderTransactionID, HeaderAmount, HeaderCurrency}

// HeaderMapping maps each canonical column name to its index in the file's
// header line. It exists only for the duration of one validation run.
type HeaderMapping map[string]int

// ResolveHeaders binds the required column names to positions in the
// tokenized header line.
//
// Name-based resolution (the default) is order-independent and tolerates
// extra columns; when a required name appears more than once only the first
// occurrence is bound. With strictOrder the header must match
// RequiredHeaders exactly in count and order.
//
// All failures here are file-level: the whole run aborts.
func ResolveHeaders(tokens []string, strictOrder bool) (HeaderMapping, error) {
	if strictOrder {
		return resolveStrict(tokens)
	}
	return resolveByName(tokens)
}

func resolveByName(tokens []string) (HeaderMapping, error) {
	mapping := make(HeaderMapping, len(RequiredHeaders))
	var missing []string

	for _, name := range RequiredHeaders {
		found := false
		for i, token := range tokens {
			if strings.EqualFold(name, token) {
				mapping[name] = i
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return nil, domain.NewInvalidFileError(fmt.Sprintf(
			"Missing required headers: %s. Expected headers: %s",
			strings.Join(missing, ", "), strings.Join(RequiredHeaders, ", ")))
	}

	return mapping, nil
}

func resolveStrict(tokens []string) (HeaderMapping, error) {
	if len(tokens) != len(RequiredHeaders) {
		return nil, invalidHeadersError()
	}

	mapping := make(HeaderMapping, len(RequiredHeaders))
	for i, name := range RequiredHeaders {
		if !strings.EqualFold(name, tokens[i]) {
			return nil, invalidHeadersError()
		}
		mapping[name] = i
	}

	return mapping, nil
}

func invalidHeadersError() error {
	return domain.NewInvalidFileError(fmt.Sprintf(
		"Invalid headers. Expected exactly: %s", strings.Join(RequiredHeaders, ", ")))
}
