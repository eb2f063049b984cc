package schema

import "strings"

// ExtractBalanced locates the first balanced {...} or [...] substring in
// text. Models wrap JSON in prose or code fences often enough that parsing
// the raw response directly is hopeless; scanning for a balanced bracket
// pair recovers the payload regardless of the wrapping. Returns "" when no
// balanced substring exists.
func ExtractBalanced(text string) string {
	for i := 0; i < len(text); i++ {
		if text[i] != '{' && text[i] != '[' {
			continue
		}
		if end := scanBalanced(text[i:]); end > 0 {
			return text[i : i+end]
		}
	}
	return ""
}

// scanBalanced returns the length of the balanced bracketed prefix of s,
// or 0 when s never closes. String literals and escapes are honored so
// brackets inside JSON strings do not confuse the depth count.
func scanBalanced(s string) int {
	var stack []byte
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
		case '}', ']':
			if len(stack) == 0 {
				return 0
			}
			open := stack[len(stack)-1]
			if (c == '}' && open != '{') || (c == ']' && open != '[') {
				return 0
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return i + 1
			}
		}
	}
	return 0
}

// firstBalancedIsObject reports whether the extracted payload is a JSON
// object (as opposed to an array).
func firstBalancedIsObject(payload string) bool {
	return strings.HasPrefix(strings.TrimSpace(payload), "{")
}
