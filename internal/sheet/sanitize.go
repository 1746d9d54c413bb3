package sheet

import "strings"

// Sanitize converts a user-supplied name into a storage-legal identifier:
// lowercase, [a-z0-9_] only, never starting with a digit. The mapping is
// lossy; two different display names can collide on the same identifier,
// in which case the second create fails against the sanitized form.
func Sanitize(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(lower) + 1)
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	s := b.String()
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	return s
}

// SanitizeAll maps Sanitize over a list of names, preserving order.
func SanitizeAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = Sanitize(n)
	}
	return out
}
