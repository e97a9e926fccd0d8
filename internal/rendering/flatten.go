package rendering

import "strings"

// FlattenField collapses line breaks and tabs in an interpolated value into
// single spaces so that it stays inside its paragraph.
func FlattenField(text string) string {
	if text == "" {
		return ""
	}
	if !strings.ContainsAny(text, "\r\n\t") {
		return strings.TrimSpace(text)
	}
	return strings.Join(strings.Fields(text), " ")
}
