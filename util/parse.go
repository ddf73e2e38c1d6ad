package util

import "strings"

// FieldsAt returns the field at the given index from a whitespace-split line.
// Returns empty string if index is out of bounds.
func FieldsAt(line string, idx int) string {
	fields := strings.Fields(line)
	if idx < len(fields) {
		return fields[idx]
	}
	return ""
}

// TextAfterField returns the text following the field at the given index,
// with runs of whitespace collapsed to single spaces. Returns empty string
// when the line has no fields past idx.
func TextAfterField(line string, idx int) string {
	fields := strings.Fields(line)
	if idx+1 >= len(fields) {
		return ""
	}
	return strings.Join(fields[idx+1:], " ")
}

// DigitPrefix returns the leading run of decimal digits in s, which may
// be empty. Raw attribute fields carry trailing annotation like
// "40(0/45)" or "29.5" that callers want stripped.
func DigitPrefix(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return s[:i]
		}
	}
	return s
}
