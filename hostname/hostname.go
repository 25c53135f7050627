// Package hostname reduces free-form input strings to canonical hostnames.
package hostname

import (
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

// Canonical reduces raw input to the lowercase hostname it refers to.
// It accepts email addresses, bare domains, and URLs: the input is trimmed
// and lowercased, everything up to the final '@' is discarded, a leading
// scheme:// is stripped, and path and port suffixes are cut. Malformed
// input degrades to an empty string instead of an error.
func Canonical(raw string) string {
	host := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.LastIndexByte(host, '@'); i != -1 {
		host = host[i+1:]
	}
	if i := strings.Index(host, "://"); i != -1 && isSchemeToken(host[:i]) {
		host = host[i+3:]
	}
	if i := strings.IndexByte(host, '/'); i != -1 {
		host = host[:i]
	}
	if i := strings.IndexByte(host, ':'); i != -1 {
		host = host[:i]
	}
	return host
}

// ToASCII converts host to its canonical lowercase ASCII (Punycode) form.
// Input that is already canonical is returned as is; everything else is
// validated and mapped by the IDNA lookup profile.
func ToASCII(host string) (string, error) {
	if isCanonical(host) {
		return host, nil
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("idna: %w", err)
	}
	return strings.ToLower(ascii), nil
}

// isSchemeToken reports whether s is a URL scheme name, so that "://"
// deeper in the input, such as a URL embedded in a query string, is not
// mistaken for a leading scheme separator.
func isSchemeToken(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		switch c := s[i]; {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '+', c == '-':
		default:
			return false
		}
	}
	return true
}

// isCanonical reports whether s consists solely of lowercase ASCII hostname
// characters.
func isCanonical(s string) bool {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '.':
		default:
			return false
		}
	}
	return true
}
