package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/tmaulidane/txn-validation-service/internal/config"
)

// Amount grammar: digits, optional fraction. The sign is matched so that a
// negative input is classified as "must be positive" instead of a format
// error; an explicit '+' is never accepted.
var amountPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// Lenient-profile identifier character set.
var idCharsetPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateDate parses raw against the ordered layout list; the first layout
// that parses wins.
func ValidateDate(raw string, layouts []string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("Date is required")
	}

	for _, layout := range layouts {
		if date, err := time.Parse(layout, raw); err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("Invalid date format '%s'. Expected format: %s",
		raw, displayLayouts(layouts))
}

// ValidateTransactionID checks the identifier against the configured length
// and character-set rule. Uniqueness is cross-row state and is checked by
// the row validator, not here.
func ValidateTransactionID(raw string, rule config.TransactionIDRule) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("TransactionID is required")
	}

	length := utf8.RuneCountInString(raw)

	if rule.ExactLength > 0 {
		if length != rule.ExactLength {
			return "", fmt.Errorf("TransactionID must be exactly %d characters. Found: '%s' (%d characters)",
				rule.ExactLength, raw, length)
		}
	} else if length > rule.MaxLength {
		return "", fmt.Errorf("TransactionID must be at most %d characters. Found: '%s' (%d characters)",
			rule.MaxLength, raw, length)
	}

	if rule.RestrictCharset && !idCharsetPattern.MatchString(raw) {
		return "", fmt.Errorf("TransactionID '%s' may only contain letters, digits, underscore and hyphen", raw)
	}

	return raw, nil
}

// ValidateAmount parses raw as an exact decimal. Binary floats cannot tell
// 2 from 3 decimal digits apart, so both parsing and the scale check go
// through shopspring/decimal and the textual representation.
func ValidateAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, fmt.Errorf("Amount is required")
	}

	if !amountPattern.MatchString(raw) {
		return decimal.Zero, fmt.Errorf("Invalid amount format '%s'. Amount must be a positive number with up to 2 decimal places", raw)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("Invalid amount value '%s'", raw)
	}

	if amount.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("Amount must be positive. Found: %s", raw)
	}

	if amount.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("Amount '%s' has too many decimal places. Expected at most 2", raw)
	}

	return amount, nil
}

// CurrencySet is an injected read-only membership test over the configured
// currency allow-list. Codes are stored uppercase.
type CurrencySet struct {
	codes   map[string]struct{}
	ordered []string
}

// NewCurrencySet builds a CurrencySet from the configured code list,
// preserving its order for error messages.
func NewCurrencySet(codes []string) CurrencySet {
	set := CurrencySet{
		codes:   make(map[string]struct{}, len(codes)),
		ordered: make([]string, 0, len(codes)),
	}
	for _, code := range codes {
		upper := strings.ToUpper(code)
		if _, ok := set.codes[upper]; ok {
			continue
		}
		set.codes[upper] = struct{}{}
		set.ordered = append(set.ordered, upper)
	}
	return set
}

// Contains reports whether code is in the allow-list.
func (s CurrencySet) Contains(code string) bool {
	_, ok := s.codes[code]
	return ok
}

// String lists the allowed codes in configuration order.
func (s CurrencySet) String() string {
	return strings.Join(s.ordered, ", ")
}

// ValidateCurrency checks raw against the allow-list. With caseInsensitive
// the input is uppercased first and the normalized code is returned;
// otherwise lowercase input fails the membership test as-is.
func ValidateCurrency(raw string, allowed CurrencySet, caseInsensitive bool) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("Currency is required")
	}

	code := raw
	if caseInsensitive {
		code = strings.ToUpper(raw)
	}

	if !allowed.Contains(code) {
		return "", fmt.Errorf("Invalid currency '%s'. Allowed values: %s", raw, allowed)
	}

	return code, nil
}

// displayLayouts renders Go date layouts in the YYYY-MM-DD notation users
// see in documentation and error messages.
func displayLayouts(layouts []string) string {
	replacer := strings.NewReplacer("2006", "YYYY", "01", "MM", "02", "DD")
	displays := make([]string, len(layouts))
	for i, layout := range layouts {
		displays[i] = replacer.Replace(layout)
	}
	return strings.Join(displays, " or ")
}
