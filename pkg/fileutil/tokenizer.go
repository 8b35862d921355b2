package fileutil

import "strings"

// Tokenize splits one logical line of delimited text into its raw field
// values. A double quote toggles an in-quotes mode; while inside quotes the
// delimiter is treated as literal text. Quote characters themselves are
// removed and each field is trimmed of surrounding whitespace afterwards.
//
// A line ending in the delimiter yields a final empty field, so an empty
// required field is later diagnosed as "required", not as a missing column.
//
// An unterminated quote absorbs the rest of the line into the open quoted
// span; tokenization itself never fails.
func Tokenize(line string, delim rune) []string {
	fields := make([]string, 0, 8)
	var current strings.Builder
	inQuotes := false

	for _, c := range line {
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == delim && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(c)
		}
	}

	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}
