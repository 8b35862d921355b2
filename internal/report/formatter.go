package report

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OutputFormatter defines the interface for rendering validation reports
type OutputFormatter interface {
	Format(r Report) ([]byte, error)
	FileExtension() string
}

// JSONFormatter renders reports as JSON
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(r Report) ([]byte, error) {
	if f.PrettyPrint {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}

// TextFormatter renders reports as a plain-text summary for terminals.
type TextFormatter struct{}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format implements the OutputFormatter interface for plain text
func (f *TextFormatter) Format(r Report) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Job %s: %s -> %s\n", r.JobID, r.Filename, r.Status)
	fmt.Fprintf(&b, "Rows: %d total, %d valid, %d invalid\n", r.TotalRows, r.ValidRows, r.InvalidRows)

	if len(r.Errors) > 0 {
		b.WriteString("\nErrors:\n")
		for _, e := range r.Errors {
			fmt.Fprintf(&b, "  Row %d: %s\n", e.RowNumber, e.Message)
		}
	}

	if len(r.Transactions) > 0 {
		b.WriteString("\nValid transactions:\n")
		for _, t := range r.Transactions {
			fmt.Fprintf(&b, "  %s  %s  %s %s\n", t.Date, t.TransactionID, t.Amount, t.Currency)
		}
	}

	return []byte(b.String()), nil
}

func (f *TextFormatter) FileExtension() string {
	return "txt"
}
