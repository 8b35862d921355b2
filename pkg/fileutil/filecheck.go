package fileutil

import "strings"

// Content types browsers are known to declare for CSV uploads. An empty
// value means the caller supplied no metadata at all.
var acceptableContentTypes = map[string]bool{
	"":                         true,
	"text/csv":                 true,
	"application/vnd.ms-excel": true,
	"application/octet-stream": true,
}

// HasCSVExtension reports whether the filename ends in .csv, ignoring case.
func HasCSVExtension(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".csv")
}

// AcceptableContentType reports whether a declared content type looks like a
// CSV upload. Browsers send inconsistent values, so an unexpected type is
// worth a warning but never a rejection.
func AcceptableContentType(contentType string) bool {
	return acceptableContentTypes[contentType]
}
