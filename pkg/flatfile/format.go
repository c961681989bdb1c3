// Package flatfile implements fixed-width text records and the flat-file
// tables built from them. A record is a single line whose field boundaries
// are byte offsets, not delimiters; the files were originally produced by a
// COBOL batch program and the layout contract is byte-exact.
package flatfile

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Format coerces value to exactly width bytes: truncated if too long,
// right-padded with spaces if too short. It never fails.
func Format(value string, width int) string {
	if len(value) >= width {
		return value[:width]
	}
	return value + strings.Repeat(" ", width-len(value))
}

// FormatInt renders n as a zero-padded decimal of exactly width digits.
// Used for numeric key fields such as the message id.
func FormatInt(n, width int) string {
	s := fmt.Sprintf("%0*d", width, n)
	if len(s) > width {
		return s[:width]
	}
	return s
}

// Unformat extracts the field at [offset, offset+width) and strips the
// trailing padding. Leading and interior spaces are preserved: only the
// padding added by Format is trailing, so only trailing whitespace goes.
// A record shorter than offset+width is padded out first, so decoding a
// truncated line yields empty fields instead of failing.
func Unformat(record string, offset, width int) string {
	if len(record) < offset+width {
		record = Format(record, offset+width)
	}
	return strings.TrimRightFunc(record[offset:offset+width], unicode.IsSpace)
}

// UnformatInt parses a numeric field, defaulting to 0 when the field is
// blank or not a valid decimal.
func UnformatInt(record string, offset, width int) int {
	s := strings.TrimSpace(Unformat(record, offset, width))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
