// internal/domain/common/email.go
package common

import (
	"net/mail"
	"strings"
)

// ValidEmail reports whether s is a plain address like "user@example.com".
// Display names ("Name <user@example.com>") are rejected, and the domain
// must contain a dot so bare hostnames do not slip through.
func ValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
