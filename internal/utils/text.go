package utils

import (
	"strings"
	"unicode/utf8"
)

// CleanText trims surrounding whitespace and strips NUL bytes and invalid UTF-8
// so free text can be stored safely in postgres text columns.
func CleanText(input string) string {
	cleaned := strings.TrimSpace(input)
	if !strings.Contains(cleaned, "\x00") && utf8.ValidString(cleaned) {
		return cleaned
	}

	cleaned = strings.ToValidUTF8(cleaned, "")
	cleaned = strings.ReplaceAll(cleaned, "\x00", "")
	return strings.TrimSpace(cleaned)
}
