package validators

import (
	"net"
	"strings"
)

// IsEmailFormatValid is a cheap structural check used on guest
// checkout, where we never resolve the domain.
func IsEmailFormatValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t")
}

// IsEmailDomainValid resolves the domain. Used at registration only;
// guest checkout must not block on DNS.
func IsEmailDomainValid(email string) bool {
	if !IsEmailFormatValid(email) {
		return false
	}

	domain := email[strings.LastIndex(email, "@")+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
