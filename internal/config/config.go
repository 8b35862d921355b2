package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Default policy values, matching the strict validation profile.
const (
	DefaultDelimiter   = ","
	DefaultIDLength    = 10
	DefaultNumWorkers  = 4
	DefaultBatchSize   = 1000
	LenientIDMaxLength = 100
	ISODateLayout      = "2006-01-02"
)

// TransactionIDRule controls how transaction identifiers are validated.
// When ExactLength is set the identifier must have exactly that many
// characters. Otherwise MaxLength bounds it from above and RestrictCharset
// limits it to letters, digits, underscore and hyphen.
type TransactionIDRule struct {
	ExactLength     int  `yaml:"exact_length"`
	MaxLength       int  `yaml:"max_length"`
	RestrictCharset bool `yaml:"restrict_charset"`
}

// Policy gathers every product-level validation decision in one place, so a
// variant behavior is a data change, not a code change. Zero values are
// filled from the strict defaults on load.
type Policy struct {
	// Delimiter is the field separator, a single character.
	Delimiter string `yaml:"delimiter"`

	// DateFormats is the ordered list of accepted Go date layouts. The
	// first layout that parses wins.
	DateFormats []string `yaml:"date_formats"`

	TransactionID TransactionIDRule `yaml:"transaction_id"`

	// Currencies is the allow-list of accepted 3-letter codes.
	Currencies []string `yaml:"currencies"`

	// CaseInsensitiveCurrency uppercases currency input before the
	// allow-list check. When false, lowercase input is rejected outright.
	CaseInsensitiveCurrency bool `yaml:"case_insensitive_currency"`

	// StrictHeaderOrder requires the header line to match the required
	// column names exactly in count and order. The default name-based
	// resolution tolerates extra, duplicated and reordered columns.
	StrictHeaderOrder bool `yaml:"strict_header_order"`

	// Worker pool sizing for the concurrent validation path.
	NumWorkers int `yaml:"num_workers"`
	BatchSize  int `yaml:"batch_size"`
}

// Default returns the strict profile: ISO dates only, identifiers of exactly
// 10 characters, the USD/EUR/INR allow-list with case-insensitive matching.
func Default() Policy {
	return Policy{
		Delimiter:               DefaultDelimiter,
		DateFormats:             []string{ISODateLayout},
		TransactionID:           TransactionIDRule{ExactLength: DefaultIDLength},
		Currencies:              []string{"USD", "EUR", "INR"},
		CaseInsensitiveCurrency: true,
		NumWorkers:              DefaultNumWorkers,
		BatchSize:               DefaultBatchSize,
	}
}

// Lenient returns the relaxed profile: day-first and month-first slash
// formats in addition to ISO, and identifiers of up to 100 characters drawn
// from a restricted character set.
func Lenient() Policy {
	p := Default()
	p.DateFormats = []string{ISODateLayout, "02/01/2006", "01/02/2006"}
	p.TransactionID = TransactionIDRule{MaxLength: LenientIDMaxLength, RestrictCharset: true}
	return p
}

// Load reads a YAML policy file on top of the strict defaults.
func Load(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("reading policy file: %w", err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Policy{}, fmt.Errorf("parsing policy file: %w", err)
	}

	if err := p.Validate(); err != nil {
		return Policy{}, fmt.Errorf("invalid policy in %s: %w", path, err)
	}

	return p, nil
}

// Validate checks the policy for values the engine cannot work with.
func (p Policy) Validate() error {
	if utf8.RuneCountInString(p.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", p.Delimiter)
	}
	if len(p.DateFormats) == 0 {
		return fmt.Errorf("at least one date format is required")
	}
	if p.TransactionID.ExactLength < 0 || p.TransactionID.MaxLength < 0 {
		return fmt.Errorf("transaction id length bounds must not be negative")
	}
	if p.TransactionID.ExactLength == 0 && p.TransactionID.MaxLength == 0 {
		return fmt.Errorf("transaction id rule needs exact_length or max_length")
	}
	if len(p.Currencies) == 0 {
		return fmt.Errorf("at least one currency is required")
	}
	for _, c := range p.Currencies {
		if len(c) != 3 {
			return fmt.Errorf("currency code %q must be exactly 3 letters", c)
		}
	}
	if p.NumWorkers < 1 {
		return fmt.Errorf("num_workers must be at least 1, got %d", p.NumWorkers)
	}
	if p.BatchSize < 1 {
		return fmt.Errorf("batch_size must be at least 1, got %d", p.BatchSize)
	}
	return nil
}

// DelimiterRune returns the delimiter as a rune for the tokenizer.
func (p Policy) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(p.Delimiter)
	return r
}
