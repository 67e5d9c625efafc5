package identity

import "strings"

// IsAdmin reports whether an email belongs to an administrator: exact
// membership in the allow-list or a domain-suffix match. Pure and stateless;
// both lists are injected from configuration.
func IsAdmin(email string, allowList, domainSuffixes []string) bool {
	if email == "" {
		return false
	}
	for _, allowed := range allowList {
		if email == allowed {
			return true
		}
	}
	for _, suffix := range domainSuffixes {
		if suffix != "" && strings.HasSuffix(email, suffix) {
			return true
		}
	}
	return false
}
