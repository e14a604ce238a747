package utils

import (
	"strconv"
	"strings"
	"unicode"
)

// Truthy reports whether an environment-style value switches a flag on.
// Empty strings and the usual negative spellings ("0", "false", "no", "off")
// are false; any other value, including debug namespaces such as "app:*",
// is true.
func Truthy(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}

// LeadingInt parses the integer prefix of s in base 10.
// Leading whitespace and a single sign are accepted and anything after the
// digits is ignored, so "8080abc" yields 8080. ok is false when s has no
// digits to parse at all.
func LeadingInt(s string) (n int64, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		// Out of int64 range; saturate like a float parse would.
		if s[0] == '-' {
			return -1 << 63, true
		}
		return 1<<63 - 1, true
	}
	return n, true
}
