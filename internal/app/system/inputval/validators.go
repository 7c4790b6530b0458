// internal/app/system/inputval/validators.go
package inputval

import (
	"net/url"
	"strings"
)

// IsValidEmail checks the basic shape of an email address without trying
// to be a full RFC 5322 parser: one @, non-empty local and domain parts,
// no whitespace, no leading/trailing/consecutive dots on either side.
// Single-label domains are allowed (dev/test environments).
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " \t<>") {
		return false
	}
	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	return validDotted(local) && validDotted(domain)
}

func validDotted(part string) bool {
	if part == "" {
		return false
	}
	if strings.HasPrefix(part, ".") || strings.HasSuffix(part, ".") {
		return false
	}
	return !strings.Contains(part, "..")
}

// IsValidHTTPURL reports whether s parses as an absolute http(s) URL.
func IsValidHTTPURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
