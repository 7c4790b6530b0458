// internal/app/system/normalize/normalize.go
//
// Package normalize holds the small canonicalization helpers applied to
// user-supplied form values before validation and storage.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// QueryParam trims a free-form query or form value.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// Role lowercases and trims a role value.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Status lowercases and trims an account status value.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ConnectionStatus uppercases and trims a connection status value.
// Connection statuses are stored uppercase (PENDING, ACCEPTED, ...).
func ConnectionStatus(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// AuthMethod lowercases and trims an auth method value.
func AuthMethod(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Tags splits a comma-separated tag string into trimmed, non-empty tags.
// Order is preserved and duplicates are kept; tag matching elsewhere is
// case-sensitive, so no case folding happens here.
func Tags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
