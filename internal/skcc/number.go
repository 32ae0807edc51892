// Package skcc holds pure identity helpers for SKCC membership numbers and
// callsigns. Everything here is stateless; award logic lives in internal/award.
package skcc

import "strings"

// ExtractBaseNumber returns the leading digit run of the first
// whitespace-delimited token of an SKCC number string, with status suffixes
// and multipliers stripped: "12345", "12345C", "12345Tx2", "12345 Sx10" all
// yield "12345". Returns "" when no leading digits exist.
func ExtractBaseNumber(raw string) string {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) == 0 {
		return ""
	}
	token := fields[0]
	end := 0
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}
	return token[:end]
}

// Suffix returns whatever follows the base number in the first token, e.g.
// "Tx2" for "12345Tx2". Returns "" when the token is all digits or invalid.
func Suffix(raw string) string {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) == 0 {
		return ""
	}
	token := fields[0]
	end := 0
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}
	if end == 0 {
		return ""
	}
	return token[end:]
}

// MemberType returns the status letter "C", "T", or "S" when the suffix
// starts with one, else "".
func MemberType(raw string) string {
	suffix := Suffix(raw)
	if suffix == "" {
		return ""
	}
	switch suffix[0] {
	case 'C', 'T', 'S':
		return string(suffix[0])
	}
	return ""
}

// IsTribuneOrSenator reports whether the number carries a T or S suffix.
func IsTribuneOrSenator(raw string) bool {
	t := MemberType(raw)
	return t == "T" || t == "S"
}

// IsValidNumber reports whether raw contains a parsable base number.
func IsValidNumber(raw string) bool {
	return ExtractBaseNumber(raw) != ""
}
