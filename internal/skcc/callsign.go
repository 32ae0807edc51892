package skcc

import "strings"

// NormalizeCallsign uppercases and trims a raw callsign and, when it contains
// portable separators ("W4GNS/P", "EA8/W4GNS"), returns the longest segment.
// The longest fragment is usually the base call rather than a portable or
// location indicator.
func NormalizeCallsign(raw string) string {
	call := strings.ToUpper(strings.TrimSpace(raw))
	if call == "" || !strings.Contains(call, "/") {
		return call
	}
	longest := ""
	for _, part := range strings.Split(call, "/") {
		if len(part) > len(longest) {
			longest = part
		}
	}
	return longest
}

// BaseCall strips everything after the first "/" without picking the longest
// segment. Exclusion lists match on this form ("K9SKC/7" is still the club
// call K9SKC).
func BaseCall(raw string) string {
	call := strings.ToUpper(strings.TrimSpace(raw))
	if i := strings.IndexByte(call, '/'); i >= 0 {
		return call[:i]
	}
	return call
}

// ExtractPrefix returns the callsign prefix: every character up to and
// including the last digit of the leading letter/digit run. W4GNS -> W4,
// AA1A -> AA1, 2E0ABC -> 2E0. Returns "" when the call has no leading
// digit-terminated prefix.
func ExtractPrefix(raw string) string {
	call := NormalizeCallsign(raw)
	last := -1
	for i := 0; i < len(call); i++ {
		c := call[i]
		if c >= '0' && c <= '9' {
			last = i
			continue
		}
		if c < 'A' || c > 'Z' {
			break
		}
	}
	if last < 0 {
		return ""
	}
	// Trim trailing letters after the final digit of the run.
	prefix := call[:last+1]
	return prefix
}
